package http

import (
	"time"

	"sg-console-srv/internal/backup"
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/paginator"
)

type listReq struct {
	Page paginator.Request
}

func (r listReq) toInput() backup.ListInput {
	return backup.ListInput{Page: r.Page}
}

type createReq struct {
	VolumeID    string `json:"-"`
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

func (r createReq) toInput() backup.CreateInput {
	return backup.CreateInput{
		VolumeID:    r.VolumeID,
		Name:        r.Name,
		Description: r.Description,
	}
}

type restoreReq struct {
	ID       string `json:"-"`
	VolumeID string `json:"volume_id" binding:"required"`
}

func (r restoreReq) toInput() backup.RestoreInput {
	return backup.RestoreInput{
		ID:       r.ID,
		VolumeID: r.VolumeID,
	}
}

type backupResp struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Size             int       `json:"size"`
	Status           string    `json:"status"`
	VolumeID         string    `json:"volume_id"`
	VolumeName       string    `json:"volume_name,omitempty"`
	AvailabilityZone string    `json:"availability_zone,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func backupID(b model.Backup) string { return b.ID }

func (h *handler) newBackupResp(b model.Backup, volumeName string) backupResp {
	return backupResp{
		ID:               b.ID,
		Name:             b.Name,
		Description:      b.Description,
		Size:             b.Size,
		Status:           b.Status,
		VolumeID:         b.VolumeID,
		VolumeName:       volumeName,
		AvailabilityZone: b.AvailabilityZone,
		CreatedAt:        b.CreatedAt,
	}
}

func (h *handler) newListResp(o backup.ListOutput) paginator.PageResponse[backupResp] {
	return paginator.NewPageResponse(o.Page, backupID, func(b model.Backup) backupResp {
		var name string
		if v, ok := o.Volumes[b.VolumeID]; ok {
			name = v.DisplayName()
		}
		return h.newBackupResp(b, name)
	})
}

func (h *handler) newGetResp(o backup.GetOutput) backupResp {
	var name string
	if o.Volume != nil {
		name = o.Volume.DisplayName()
	}
	return h.newBackupResp(o.Backup, name)
}

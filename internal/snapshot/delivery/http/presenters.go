package http

import (
	"time"

	"sg-console-srv/internal/model"
	"sg-console-srv/internal/snapshot"
	"sg-console-srv/pkg/paginator"
)

type listReq struct {
	Page paginator.Request
}

func (r listReq) toInput() snapshot.ListInput {
	return snapshot.ListInput{Page: r.Page}
}

type createReq struct {
	VolumeID    string `json:"-"`
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

func (r createReq) toInput() snapshot.CreateInput {
	return snapshot.CreateInput{
		VolumeID:    r.VolumeID,
		Name:        r.Name,
		Description: r.Description,
	}
}

type updateReq struct {
	ID          string `json:"-"`
	Name        string `json:"name" binding:"max=255"`
	Description string `json:"description"`
}

func (r updateReq) toInput() snapshot.UpdateInput {
	return snapshot.UpdateInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}

type snapshotResp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Size        int       `json:"size"`
	Status      string    `json:"status"`
	VolumeID    string    `json:"volume_id"`
	VolumeName  string    `json:"volume_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func snapshotID(s model.Snapshot) string { return s.ID }

func (h *handler) newSnapshotResp(s model.Snapshot, volumeName string) snapshotResp {
	return snapshotResp{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Size:        s.Size,
		Status:      s.Status,
		VolumeID:    s.VolumeID,
		VolumeName:  volumeName,
		CreatedAt:   s.CreatedAt,
	}
}

func (h *handler) newListResp(o snapshot.ListOutput) paginator.PageResponse[snapshotResp] {
	return paginator.NewPageResponse(o.Page, snapshotID, func(s model.Snapshot) snapshotResp {
		var name string
		if v, ok := o.Volumes[s.VolumeID]; ok {
			name = v.DisplayName()
		}
		return h.newSnapshotResp(s, name)
	})
}

func (h *handler) newGetResp(o snapshot.GetOutput) snapshotResp {
	var name string
	if o.Volume != nil {
		name = o.Volume.DisplayName()
	}
	return h.newSnapshotResp(o.Snapshot, name)
}

package http

import (
	"time"

	"sg-console-srv/internal/model"
	"sg-console-srv/internal/volume"
	"sg-console-srv/pkg/paginator"
)

type listReq struct {
	Page   paginator.Request
	Status string
}

func (r listReq) toInput() volume.ListInput {
	return volume.ListInput{
		Page:   r.Page,
		Status: r.Status,
	}
}

type createReq struct {
	Name             string `json:"name" binding:"max=255"`
	Description      string `json:"description"`
	Size             int    `json:"size" binding:"required,min=1"`
	VolumeType       string `json:"volume_type"`
	AvailabilityZone string `json:"availability_zone"`
	SourceType       string `json:"source_type" binding:"omitempty,oneof=none snapshot checkpoint"`
	SnapshotID       string `json:"snapshot_id"`
	CheckpointID     string `json:"checkpoint_id"`
}

func (r createReq) toInput() volume.CreateInput {
	return volume.CreateInput{
		Name:             r.Name,
		Description:      r.Description,
		Size:             r.Size,
		VolumeType:       r.VolumeType,
		AvailabilityZone: r.AvailabilityZone,
		SourceType:       r.SourceType,
		SnapshotID:       r.SnapshotID,
		CheckpointID:     r.CheckpointID,
	}
}

type updateReq struct {
	ID          string `json:"-"`
	Name        string `json:"name" binding:"max=255"`
	Description string `json:"description"`
}

func (r updateReq) toInput() volume.UpdateInput {
	return volume.UpdateInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}

func (r updateReq) toEnableInput() volume.EnableInput {
	return volume.EnableInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}

type attachReq struct {
	ID         string `json:"-"`
	InstanceID string `json:"instance_id" binding:"required"`
	Mountpoint string `json:"mountpoint"`
	Mode       string `json:"mode" binding:"omitempty,oneof=rw ro"`
	HostName   string `json:"host_name"`
}

func (r attachReq) toInput() volume.AttachInput {
	return volume.AttachInput{
		ID:         r.ID,
		InstanceID: r.InstanceID,
		Mountpoint: r.Mountpoint,
		Mode:       r.Mode,
		HostName:   r.HostName,
	}
}

type detachReq struct {
	ID           string `json:"-"`
	AttachmentID string `json:"attachment_id"`
}

func (r detachReq) toInput() volume.DetachInput {
	return volume.DetachInput{
		ID:           r.ID,
		AttachmentID: r.AttachmentID,
	}
}

type attachmentResp struct {
	ID           string `json:"id"`
	ServerID     string `json:"server_id,omitempty"`
	InstanceName string `json:"instance_name"`
	HostName     string `json:"host_name,omitempty"`
	Mountpoint   string `json:"mountpoint,omitempty"`
}

type volumeResp struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	Size             int              `json:"size"`
	Status           string           `json:"status"`
	ReplicateStatus  string           `json:"replicate_status,omitempty"`
	VolumeType       string           `json:"volume_type,omitempty"`
	AvailabilityZone string           `json:"availability_zone,omitempty"`
	SnapshotID       string           `json:"snapshot_id,omitempty"`
	ReplicationID    string           `json:"replication_id,omitempty"`
	Attachments      []attachmentResp `json:"attachments"`
	CreatedAt        time.Time        `json:"created_at"`
}

func volumeID(v model.Volume) string { return v.ID }

func (h *handler) newVolumeResp(v model.Volume) volumeResp {
	attachments := make([]attachmentResp, 0, len(v.Attachments))
	for _, a := range v.Attachments {
		attachments = append(attachments, attachmentResp{
			ID:           a.ID,
			ServerID:     a.ServerID,
			InstanceName: a.InstanceName,
			HostName:     a.HostName,
			Mountpoint:   a.Mountpoint,
		})
	}
	return volumeResp{
		ID:               v.ID,
		Name:             v.DisplayName(),
		Description:      v.Description,
		Size:             v.Size,
		Status:           v.Status,
		ReplicateStatus:  v.ReplicateStatus,
		VolumeType:       v.VolumeType,
		AvailabilityZone: v.AvailabilityZone,
		SnapshotID:       v.SnapshotID,
		ReplicationID:    v.ReplicationID,
		Attachments:      attachments,
		CreatedAt:        v.CreatedAt,
	}
}

func (h *handler) newListResp(o volume.ListOutput) paginator.PageResponse[volumeResp] {
	return paginator.NewPageResponse(o.Page, volumeID, h.newVolumeResp)
}

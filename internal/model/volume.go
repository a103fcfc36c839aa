package model

import (
	"time"

	"sg-console-srv/pkg/sgsclient"
)

// UnknownInstance is shown for attachments the gateway reports without a server id.
const UnknownInstance = "Unknown instance"

// Volume represents a storage-gateway volume.
type Volume struct {
	ID               string
	Name             string
	Description      string
	Size             int
	Status           string // enabled | available | in-use | error | ...
	ReplicateStatus  string
	VolumeType       string
	AvailabilityZone string
	SnapshotID       string
	ReplicationID    string
	Attachments      []Attachment
	CreatedAt        time.Time
}

// Attachment is a volume attachment to an instance.
type Attachment struct {
	ID           string
	ServerID     string
	HostName     string
	Mountpoint   string
	InstanceName string
}

// DisplayName falls back to the id when the volume is unnamed.
func (v Volume) DisplayName() string {
	if v.Name != "" {
		return v.Name
	}
	return v.ID
}

// NewVolumeFromSGS converts a gateway volume to model Volume.
func NewVolumeFromSGS(v *sgsclient.Volume) *Volume {
	if v == nil {
		return nil
	}

	vol := &Volume{
		ID:               v.ID,
		Name:             v.Name,
		Description:      v.Description,
		Size:             v.Size,
		Status:           v.Status,
		ReplicateStatus:  v.ReplicateStatus,
		VolumeType:       v.VolumeType,
		AvailabilityZone: v.AvailabilityZone,
		SnapshotID:       v.SnapshotID,
		ReplicationID:    v.ReplicationID,
		CreatedAt:        parseSGSTime(v.CreatedAt),
	}

	vol.Attachments = make([]Attachment, 0, len(v.Attachments))
	for _, a := range v.Attachments {
		vol.Attachments = append(vol.Attachments, Attachment{
			ID:         a.AttachmentID,
			ServerID:   a.ServerID,
			HostName:   a.HostName,
			Mountpoint: a.Mountpoint,
		})
	}

	return vol
}

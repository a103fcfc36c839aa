package volume

import (
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/paginator"
)

// Volume sources. An empty source is inferred from which source id is set.
const (
	SourceNone       = "none"
	SourceSnapshot   = "snapshot"
	SourceCheckpoint = "checkpoint"
)

// DefaultAttachMode is used when an attach request names no mode.
const DefaultAttachMode = "rw"

type ListInput struct {
	Page   paginator.Request
	Status string
}

type ListOutput struct {
	Page paginator.Page[model.Volume]
}

type CreateInput struct {
	Name             string
	Description      string
	Size             int
	VolumeType       string
	AvailabilityZone string
	SourceType       string
	SnapshotID       string
	CheckpointID     string
}

type UpdateInput struct {
	ID          string
	Name        string
	Description string
}

// EnableInput brings an existing block-storage volume under gateway management.
type EnableInput struct {
	ID          string
	Name        string
	Description string
}

type AttachInput struct {
	ID         string
	InstanceID string
	Mountpoint string
	Mode       string
	HostName   string
}

type DetachInput struct {
	ID           string
	AttachmentID string
}

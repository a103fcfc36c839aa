package snapshot

import (
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/paginator"
)

type ListInput struct {
	Page paginator.Request
}

// ListOutput carries the volumes the page refers to. Volumes is nil when they could not
// be resolved.
type ListOutput struct {
	Page    paginator.Page[model.Snapshot]
	Volumes map[string]model.Volume
}

type GetOutput struct {
	Snapshot model.Snapshot
	Volume   *model.Volume
}

type CreateInput struct {
	VolumeID    string
	Name        string
	Description string
}

type UpdateInput struct {
	ID          string
	Name        string
	Description string
}

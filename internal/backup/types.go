package backup

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
	Page    paginator.Page[model.Backup]
	Volumes map[string]model.Volume
}

type GetOutput struct {
	Backup model.Backup
	Volume *model.Volume
}

type CreateInput struct {
	VolumeID    string
	Name        string
	Description string
}

// RestoreInput restores a backup onto an existing volume.
type RestoreInput struct {
	ID       string
	VolumeID string
}

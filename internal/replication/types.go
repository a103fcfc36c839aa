package replication

import (
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/paginator"
)

type ListInput struct {
	Page paginator.Request
}

// ListOutput carries the master and slave volumes the page refers to. Volumes is nil when
// they could not be resolved.
type ListOutput struct {
	Page    paginator.Page[model.Replication]
	Volumes map[string]model.Volume
}

type GetOutput struct {
	Replication  model.Replication
	MasterVolume *model.Volume
	SlaveVolume  *model.Volume
}

type CreateInput struct {
	Name         string
	Description  string
	MasterVolume string
	SlaveVolume  string
}

type UpdateInput struct {
	ID          string
	Name        string
	Description string
}

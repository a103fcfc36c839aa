package checkpoint

import (
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/paginator"
)

type ListInput struct {
	Page paginator.Request
}

// ListOutput carries the parent replications of the page, nil when unresolved.
type ListOutput struct {
	Page         paginator.Page[model.Checkpoint]
	Replications map[string]model.Replication
}

type GetOutput struct {
	Checkpoint  model.Checkpoint
	Replication *model.Replication
}

type CreateInput struct {
	ReplicationID string
	Name          string
	Description   string
}

type UpdateInput struct {
	ID          string
	Name        string
	Description string
}

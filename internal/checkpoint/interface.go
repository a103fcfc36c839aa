package checkpoint

import (
	"context"

	"sg-console-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Get(ctx context.Context, sc model.Scope, id string) (GetOutput, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Checkpoint, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Checkpoint, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	Rollback(ctx context.Context, sc model.Scope, id string) error
}

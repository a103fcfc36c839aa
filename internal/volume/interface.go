package volume

import (
	"context"

	"sg-console-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Get(ctx context.Context, sc model.Scope, id string) (model.Volume, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Volume, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Volume, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	Enable(ctx context.Context, sc model.Scope, input EnableInput) error
	Disable(ctx context.Context, sc model.Scope, id string) error
	Attach(ctx context.Context, sc model.Scope, input AttachInput) error
	Detach(ctx context.Context, sc model.Scope, input DetachInput) error
}

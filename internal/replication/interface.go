package replication

import (
	"context"

	"sg-console-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Get(ctx context.Context, sc model.Scope, id string) (GetOutput, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Replication, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Replication, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	Enable(ctx context.Context, sc model.Scope, id string) error
	Disable(ctx context.Context, sc model.Scope, id string) error
	Failover(ctx context.Context, sc model.Scope, id string) error
	Reverse(ctx context.Context, sc model.Scope, id string) error
}

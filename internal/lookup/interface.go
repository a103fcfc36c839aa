package lookup

import (
	"context"

	"sg-console-srv/internal/model"
)

// UseCase resolves related entities for list views. Indexes are keyed by id.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// ResolveScope replaces the caller-supplied project and user with the ones the
	// gateway reports for sc.Token.
	ResolveScope(ctx context.Context, sc model.Scope) (model.Scope, error)
	VolumeIndex(ctx context.Context, sc model.Scope) (map[string]model.Volume, error)
	ReplicationIndex(ctx context.Context, sc model.Scope) (map[string]model.Replication, error)
	InvalidateVolumes(ctx context.Context, sc model.Scope)
	InvalidateReplications(ctx context.Context, sc model.Scope)
}

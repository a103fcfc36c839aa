package repository

import (
	"context"

	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/sgsclient"
)

// CacheRepository stores unpaged entity lists per project and resolved token scopes.
type CacheRepository interface {
	// GetVolumes returns ErrCacheMiss when nothing is cached.
	GetVolumes(ctx context.Context, projectID string) ([]model.Volume, error)
	SaveVolumes(ctx context.Context, projectID string, volumes []model.Volume) error
	DeleteVolumes(ctx context.Context, projectID string) error

	// GetReplications returns ErrCacheMiss when nothing is cached.
	GetReplications(ctx context.Context, projectID string) ([]model.Replication, error)
	SaveReplications(ctx context.Context, projectID string, replications []model.Replication) error
	DeleteReplications(ctx context.Context, projectID string) error

	// GetTokenScope returns ErrCacheMiss when the token was not resolved recently.
	GetTokenScope(ctx context.Context, token string) (sgsclient.TokenScope, error)
	SaveTokenScope(ctx context.Context, token string, ts sgsclient.TokenScope) error
}

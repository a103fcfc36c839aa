package repository

import (
	"context"

	"sg-console-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	Migrate(ctx context.Context) error
	// CreateActionLog is idempotent on the log id.
	CreateActionLog(ctx context.Context, opt CreateActionLogOptions) error
	ListActionLogs(ctx context.Context, opt ListActionLogsOptions) ([]model.ActionLog, error)
}

package postgre

import (
	"context"
	"fmt"

	"sg-console-srv/internal/actionlog/repository"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS action_logs (
		id            TEXT PRIMARY KEY,
		action        TEXT NOT NULL,
		resource_type TEXT NOT NULL,
		resource_id   TEXT NOT NULL,
		project_id    TEXT NOT NULL DEFAULT '',
		user_id       TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_action_logs_project_created
		ON action_logs (project_id, created_at DESC, id DESC)`,
}

// Migrate creates the action_logs table and its keyset index.
func (r *implRepository) Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			r.l.Errorf(ctx, "actionlog.repository.postgre.Migrate: Failed to apply migration: %v", err)
			return fmt.Errorf("%w: %w", repository.ErrFailedToMigrate, err)
		}
	}
	return nil
}

package postgre

import (
	"context"
	"fmt"

	"sg-console-srv/internal/actionlog/repository"
	"sg-console-srv/internal/model"
)

// CreateActionLog inserts the log. Re-delivered events are ignored.
func (r *implRepository) CreateActionLog(ctx context.Context, opt repository.CreateActionLogOptions) error {
	_, err := r.db.ExecContext(ctx, queryInsertActionLog,
		opt.ID, opt.Action, opt.ResourceType, opt.ResourceID, opt.ProjectID, opt.UserID, opt.CreatedAt.UTC())
	if err != nil {
		r.l.Errorf(ctx, "actionlog.repository.postgre.CreateActionLog: Failed to insert action log %s: %v", opt.ID, err)
		return fmt.Errorf("%w: %w", repository.ErrFailedToInsert, err)
	}
	return nil
}

// ListActionLogs returns at most opt.Limit logs of opt.ProjectID after opt.Marker in opt.Sort order.
func (r *implRepository) ListActionLogs(ctx context.Context, opt repository.ListActionLogsOptions) ([]model.ActionLog, error) {
	if opt.ProjectID == "" {
		return nil, repository.ErrProjectRequired
	}

	if opt.Marker != "" {
		var exists bool
		if err := r.db.QueryRowContext(ctx, queryActionLogExists, opt.Marker, opt.ProjectID).Scan(&exists); err != nil {
			r.l.Errorf(ctx, "actionlog.repository.postgre.ListActionLogs: Failed to check marker: %v", err)
			return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
		}
		if !exists {
			return nil, repository.ErrMarkerNotFound
		}
	}

	query, args := buildListActionLogsQuery(opt)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "actionlog.repository.postgre.ListActionLogs: Failed to query action logs: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	logs := make([]model.ActionLog, 0, opt.Limit)
	for rows.Next() {
		var a model.ActionLog
		if err := rows.Scan(&a.ID, &a.Action, &a.ResourceType, &a.ResourceID, &a.ProjectID, &a.UserID, &a.CreatedAt); err != nil {
			r.l.Errorf(ctx, "actionlog.repository.postgre.ListActionLogs: Failed to scan action log: %v", err)
			return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
		}
		logs = append(logs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	return logs, nil
}

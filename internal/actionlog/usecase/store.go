package usecase

import (
	"context"
	"fmt"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/actionlog/repository"
)

// Store persists a consumed event.
func (uc *implUseCase) Store(ctx context.Context, event actionlog.ActionEvent) error {
	if event.ID == "" || event.Action == "" || event.ResourceType == "" || event.ResourceID == "" {
		return actionlog.ErrInvalidEvent
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = uc.now().UTC()
	}

	err := uc.repo.CreateActionLog(ctx, repository.CreateActionLogOptions{
		ID:           event.ID,
		Action:       event.Action,
		ResourceType: event.ResourceType,
		ResourceID:   event.ResourceID,
		ProjectID:    event.ProjectID,
		UserID:       event.UserID,
		CreatedAt:    event.CreatedAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "actionlog.usecase.Store: repo CreateActionLog failed: %v", err)
		return fmt.Errorf("store action log %s: %w", event.ID, err)
	}
	return nil
}

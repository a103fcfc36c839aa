package usecase

import (
	"context"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/model"
)

// Record publishes the action. Publishing failures are logged and swallowed.
func (uc *implUseCase) Record(ctx context.Context, sc model.Scope, input actionlog.RecordInput) {
	if uc.producer == nil {
		return
	}

	event := actionlog.ActionEvent{
		ID:           uc.newID(),
		Action:       input.Action,
		ResourceType: input.ResourceType,
		ResourceID:   input.ResourceID,
		ProjectID:    sc.ProjectID,
		UserID:       sc.UserID,
		CreatedAt:    uc.now().UTC(),
	}

	if err := uc.producer.PublishAction(ctx, event); err != nil {
		uc.l.Warnf(ctx, "actionlog.usecase.Record: Failed to publish %s %s %s: %v",
			input.Action, input.ResourceType, input.ResourceID, err)
	}
}

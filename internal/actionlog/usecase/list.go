package usecase

import (
	"context"
	"errors"
	"fmt"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/actionlog/repository"
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/metrics"
	"sg-console-srv/pkg/paginator"
)

// List pages the caller's project action logs newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input actionlog.ListInput) (actionlog.ListOutput, error) {
	if sc.ProjectID == "" {
		return actionlog.ListOutput{}, actionlog.ErrProjectRequired
	}

	var resourceTypes []string
	if input.ResourceType != "" {
		resourceTypes = []string{input.ResourceType}
	}

	page, err := paginator.Fetch(ctx, func(ctx context.Context, p paginator.ListParams) ([]model.ActionLog, error) {
		return uc.repo.ListActionLogs(ctx, repository.ListActionLogsOptions{
			ProjectID:     sc.ProjectID,
			ResourceTypes: resourceTypes,
			Marker:        p.Marker,
			Sort:          p.Sort,
			Limit:         p.Limit,
		})
	}, input.Page)
	metrics.ObservePageFetch("action_log", err)
	if err != nil {
		uc.l.Errorf(ctx, "actionlog.usecase.List: %v", err)
		if errors.Is(err, repository.ErrMarkerNotFound) {
			return actionlog.ListOutput{Page: page}, fmt.Errorf("%w: %w", actionlog.ErrMarkerNotFound, err)
		}
		return actionlog.ListOutput{Page: page}, err
	}

	return actionlog.ListOutput{Page: page}, nil
}

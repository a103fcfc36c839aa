package usecase

import (
	"context"
	"errors"
	"fmt"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/model"
	"sg-console-srv/internal/replication"
	"sg-console-srv/pkg/sgsclient"
)

func mapSGSError(err, notFound error) error {
	if errors.Is(err, sgsclient.ErrNotFound) {
		return fmt.Errorf("%w: %w", notFound, err)
	}
	return fmt.Errorf("%w: %w", replication.ErrGatewayFailed, err)
}

// mutated drops both cached indexes: replication actions change the replicate status
// of the paired volumes.
func (uc *implUseCase) mutated(ctx context.Context, sc model.Scope, action, id string) {
	uc.lookup.InvalidateReplications(ctx, sc)
	uc.lookup.InvalidateVolumes(ctx, sc)
	uc.recorder.Record(ctx, sc, actionlog.RecordInput{
		Action:       action,
		ResourceType: model.ResourceReplication,
		ResourceID:   id,
	})
}

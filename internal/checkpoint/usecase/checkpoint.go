package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/checkpoint"
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/metrics"
	"sg-console-srv/pkg/paginator"
	"sg-console-srv/pkg/sgsclient"
)

func mapSGSError(err, notFound error) error {
	if errors.Is(err, sgsclient.ErrNotFound) {
		return fmt.Errorf("%w: %w", notFound, err)
	}
	return fmt.Errorf("%w: %w", checkpoint.ErrGatewayFailed, err)
}

func (uc *implUseCase) record(ctx context.Context, sc model.Scope, action, id string) {
	uc.recorder.Record(ctx, sc, actionlog.RecordInput{
		Action:       action,
		ResourceType: model.ResourceCheckpoint,
		ResourceID:   id,
	})
}

// List pages the caller's checkpoints and resolves their replications.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input checkpoint.ListInput) (checkpoint.ListOutput, error) {
	page, err := paginator.Fetch(ctx, func(ctx context.Context, p paginator.ListParams) ([]model.Checkpoint, error) {
		items, err := uc.sgs.ListCheckpoints(ctx, sc.Token, sgsclient.ListOptions{
			Limit:  p.Limit,
			Marker: p.Marker,
			Sort:   p.Sort,
		})
		if err != nil {
			return nil, err
		}
		out := make([]model.Checkpoint, 0, len(items))
		for i := range items {
			out = append(out, *model.NewCheckpointFromSGS(&items[i]))
		}
		return out, nil
	}, input.Page)
	metrics.ObservePageFetch(model.ResourceCheckpoint, err)
	if err != nil {
		uc.l.Errorf(ctx, "checkpoint.usecase.List: %v", err)
		return checkpoint.ListOutput{Page: page}, err
	}

	replications, err := uc.lookup.ReplicationIndex(ctx, sc)
	if err != nil {
		uc.l.Warnf(ctx, "checkpoint.usecase.List: lookup ReplicationIndex failed: %v", err)
	}

	return checkpoint.ListOutput{Page: page, Replications: replications}, nil
}

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id string) (checkpoint.GetOutput, error) {
	cp, err := uc.sgs.GetCheckpoint(ctx, sc.Token, id)
	if err != nil {
		uc.l.Errorf(ctx, "checkpoint.usecase.Get: sgs GetCheckpoint %s failed: %v", id, err)
		return checkpoint.GetOutput{}, mapSGSError(err, checkpoint.ErrCheckpointNotFound)
	}

	o := checkpoint.GetOutput{Checkpoint: *model.NewCheckpointFromSGS(cp)}
	if cp.ReplicationID != "" {
		r, err := uc.sgs.GetReplication(ctx, sc.Token, cp.ReplicationID)
		if err != nil {
			uc.l.Warnf(ctx, "checkpoint.usecase.Get: sgs GetReplication %s failed: %v", cp.ReplicationID, err)
		} else {
			o.Replication = model.NewReplicationFromSGS(r)
		}
	}

	return o, nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input checkpoint.CreateInput) (model.Checkpoint, error) {
	if strings.TrimSpace(input.Name) == "" {
		return model.Checkpoint{}, checkpoint.ErrNameRequired
	}

	cp, err := uc.sgs.CreateCheckpoint(ctx, sc.Token, sgsclient.CreateCheckpointRequest{
		ReplicationID: input.ReplicationID,
		Name:          input.Name,
		Description:   input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "checkpoint.usecase.Create: sgs CreateCheckpoint on %s failed: %v", input.ReplicationID, err)
		return model.Checkpoint{}, mapSGSError(err, checkpoint.ErrReplicationNotFound)
	}

	uc.record(ctx, sc, actionlog.ActionCreate, cp.ID)
	return *model.NewCheckpointFromSGS(cp), nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input checkpoint.UpdateInput) (model.Checkpoint, error) {
	if strings.TrimSpace(input.Name) == "" {
		return model.Checkpoint{}, checkpoint.ErrNameRequired
	}

	cp, err := uc.sgs.UpdateCheckpoint(ctx, sc.Token, input.ID, sgsclient.UpdateRequest{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "checkpoint.usecase.Update: sgs UpdateCheckpoint %s failed: %v", input.ID, err)
		return model.Checkpoint{}, mapSGSError(err, checkpoint.ErrCheckpointNotFound)
	}

	uc.record(ctx, sc, actionlog.ActionUpdate, input.ID)
	return *model.NewCheckpointFromSGS(cp), nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.sgs.DeleteCheckpoint(ctx, sc.Token, id); err != nil {
		uc.l.Errorf(ctx, "checkpoint.usecase.Delete: sgs DeleteCheckpoint %s failed: %v", id, err)
		return mapSGSError(err, checkpoint.ErrCheckpointNotFound)
	}

	uc.record(ctx, sc, actionlog.ActionDelete, id)
	return nil
}

// Rollback restores the replicated volumes to the checkpoint, so both cached indexes go stale.
func (uc *implUseCase) Rollback(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.sgs.RollbackCheckpoint(ctx, sc.Token, id); err != nil {
		uc.l.Errorf(ctx, "checkpoint.usecase.Rollback: sgs RollbackCheckpoint %s failed: %v", id, err)
		return mapSGSError(err, checkpoint.ErrCheckpointNotFound)
	}

	uc.lookup.InvalidateVolumes(ctx, sc)
	uc.lookup.InvalidateReplications(ctx, sc)
	uc.record(ctx, sc, actionlog.ActionRollback, id)
	return nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/model"
	"sg-console-srv/internal/snapshot"
	"sg-console-srv/pkg/metrics"
	"sg-console-srv/pkg/paginator"
	"sg-console-srv/pkg/sgsclient"
)

// List pages the caller's snapshots and resolves their volumes. A failed volume lookup
// leaves the volumes unresolved without failing the list.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input snapshot.ListInput) (snapshot.ListOutput, error) {
	page, err := paginator.Fetch(ctx, func(ctx context.Context, p paginator.ListParams) ([]model.Snapshot, error) {
		items, err := uc.sgs.ListSnapshots(ctx, sc.Token, sgsclient.ListOptions{
			Limit:  p.Limit,
			Marker: p.Marker,
			Sort:   p.Sort,
		})
		if err != nil {
			return nil, err
		}
		out := make([]model.Snapshot, 0, len(items))
		for i := range items {
			out = append(out, *model.NewSnapshotFromSGS(&items[i]))
		}
		return out, nil
	}, input.Page)
	metrics.ObservePageFetch(model.ResourceSnapshot, err)
	if err != nil {
		uc.l.Errorf(ctx, "snapshot.usecase.List: %v", err)
		return snapshot.ListOutput{Page: page}, err
	}

	volumes, err := uc.lookup.VolumeIndex(ctx, sc)
	if err != nil {
		uc.l.Warnf(ctx, "snapshot.usecase.List: lookup VolumeIndex failed: %v", err)
	}

	return snapshot.ListOutput{Page: page, Volumes: volumes}, nil
}

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id string) (snapshot.GetOutput, error) {
	s, err := uc.sgs.GetSnapshot(ctx, sc.Token, id)
	if err != nil {
		uc.l.Errorf(ctx, "snapshot.usecase.Get: sgs GetSnapshot %s failed: %v", id, err)
		return snapshot.GetOutput{}, mapSGSError(err, snapshot.ErrSnapshotNotFound)
	}

	out := snapshot.GetOutput{Snapshot: *model.NewSnapshotFromSGS(s)}
	v, err := uc.sgs.GetVolume(ctx, sc.Token, s.VolumeID)
	if err != nil {
		uc.l.Warnf(ctx, "snapshot.usecase.Get: sgs GetVolume %s failed: %v", s.VolumeID, err)
		return out, nil
	}
	out.Volume = model.NewVolumeFromSGS(v)
	return out, nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input snapshot.CreateInput) (model.Snapshot, error) {
	if input.Name == "" {
		return model.Snapshot{}, snapshot.ErrNameRequired
	}

	s, err := uc.sgs.CreateSnapshot(ctx, sc.Token, sgsclient.CreateSnapshotRequest{
		VolumeID:    input.VolumeID,
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "snapshot.usecase.Create: sgs CreateSnapshot on %s failed: %v", input.VolumeID, err)
		return model.Snapshot{}, mapSGSError(err, snapshot.ErrVolumeNotFound)
	}

	uc.record(ctx, sc, actionlog.ActionCreate, s.ID)
	return *model.NewSnapshotFromSGS(s), nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input snapshot.UpdateInput) (model.Snapshot, error) {
	s, err := uc.sgs.UpdateSnapshot(ctx, sc.Token, input.ID, sgsclient.UpdateRequest{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "snapshot.usecase.Update: sgs UpdateSnapshot %s failed: %v", input.ID, err)
		return model.Snapshot{}, mapSGSError(err, snapshot.ErrSnapshotNotFound)
	}

	uc.record(ctx, sc, actionlog.ActionUpdate, input.ID)
	return *model.NewSnapshotFromSGS(s), nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.sgs.DeleteSnapshot(ctx, sc.Token, id); err != nil {
		uc.l.Errorf(ctx, "snapshot.usecase.Delete: sgs DeleteSnapshot %s failed: %v", id, err)
		return mapSGSError(err, snapshot.ErrSnapshotNotFound)
	}

	uc.record(ctx, sc, actionlog.ActionDelete, id)
	return nil
}

func (uc *implUseCase) record(ctx context.Context, sc model.Scope, action, id string) {
	uc.recorder.Record(ctx, sc, actionlog.RecordInput{
		Action:       action,
		ResourceType: model.ResourceSnapshot,
		ResourceID:   id,
	})
}

func mapSGSError(err, notFound error) error {
	if errors.Is(err, sgsclient.ErrNotFound) {
		return fmt.Errorf("%w: %w", notFound, err)
	}
	return fmt.Errorf("%w: %w", snapshot.ErrGatewayFailed, err)
}

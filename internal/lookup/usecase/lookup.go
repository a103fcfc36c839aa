package usecase

import (
	"context"
	"errors"
	"fmt"

	"sg-console-srv/internal/lookup"
	"sg-console-srv/internal/lookup/repository"
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/sgsclient"
)

// VolumeIndex returns every volume visible to the caller keyed by id. Lists are cached per
// project; callers without a project always go to the gateway.
func (uc *implUseCase) VolumeIndex(ctx context.Context, sc model.Scope) (map[string]model.Volume, error) {
	volumes, ok := uc.cachedVolumes(ctx, sc)
	if !ok {
		items, err := uc.sgs.ListVolumes(ctx, sc.Token, sgsclient.ListOptions{})
		if err != nil {
			uc.l.Warnf(ctx, "lookup.usecase.VolumeIndex: sgs ListVolumes failed: %v", err)
			return nil, fmt.Errorf("%w: %w", lookup.ErrVolumeLookupFailed, err)
		}

		volumes = make([]model.Volume, 0, len(items))
		for i := range items {
			volumes = append(volumes, *model.NewVolumeFromSGS(&items[i]))
		}
		if uc.cache != nil && sc.ProjectID != "" {
			_ = uc.cache.SaveVolumes(ctx, sc.ProjectID, volumes)
		}
	}

	index := make(map[string]model.Volume, len(volumes))
	for _, v := range volumes {
		index[v.ID] = v
	}
	return index, nil
}

// ReplicationIndex returns every replication visible to the caller keyed by id.
func (uc *implUseCase) ReplicationIndex(ctx context.Context, sc model.Scope) (map[string]model.Replication, error) {
	replications, ok := uc.cachedReplications(ctx, sc)
	if !ok {
		items, err := uc.sgs.ListReplications(ctx, sc.Token, sgsclient.ListOptions{})
		if err != nil {
			uc.l.Warnf(ctx, "lookup.usecase.ReplicationIndex: sgs ListReplications failed: %v", err)
			return nil, fmt.Errorf("%w: %w", lookup.ErrReplicationLookupFailed, err)
		}

		replications = make([]model.Replication, 0, len(items))
		for i := range items {
			replications = append(replications, *model.NewReplicationFromSGS(&items[i]))
		}
		if uc.cache != nil && sc.ProjectID != "" {
			_ = uc.cache.SaveReplications(ctx, sc.ProjectID, replications)
		}
	}

	index := make(map[string]model.Replication, len(replications))
	for _, r := range replications {
		index[r.ID] = r
	}
	return index, nil
}

// InvalidateVolumes drops the caller's cached volume list.
func (uc *implUseCase) InvalidateVolumes(ctx context.Context, sc model.Scope) {
	if uc.cache == nil || sc.ProjectID == "" {
		return
	}
	_ = uc.cache.DeleteVolumes(ctx, sc.ProjectID)
}

// InvalidateReplications drops the caller's cached replication list.
func (uc *implUseCase) InvalidateReplications(ctx context.Context, sc model.Scope) {
	if uc.cache == nil || sc.ProjectID == "" {
		return
	}
	_ = uc.cache.DeleteReplications(ctx, sc.ProjectID)
}

func (uc *implUseCase) cachedVolumes(ctx context.Context, sc model.Scope) ([]model.Volume, bool) {
	if uc.cache == nil || sc.ProjectID == "" {
		return nil, false
	}
	volumes, err := uc.cache.GetVolumes(ctx, sc.ProjectID)
	if err != nil {
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "lookup.usecase.cachedVolumes: cache unavailable, falling back to sgs: %v", err)
		}
		return nil, false
	}
	return volumes, true
}

func (uc *implUseCase) cachedReplications(ctx context.Context, sc model.Scope) ([]model.Replication, bool) {
	if uc.cache == nil || sc.ProjectID == "" {
		return nil, false
	}
	replications, err := uc.cache.GetReplications(ctx, sc.ProjectID)
	if err != nil {
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "lookup.usecase.cachedReplications: cache unavailable, falling back to sgs: %v", err)
		}
		return nil, false
	}
	return replications, true
}

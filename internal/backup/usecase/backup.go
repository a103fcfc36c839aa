package usecase

import (
	"context"
	"errors"
	"fmt"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/backup"
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/metrics"
	"sg-console-srv/pkg/paginator"
	"sg-console-srv/pkg/sgsclient"
)

// List pages the caller's backups and resolves their volumes.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input backup.ListInput) (backup.ListOutput, error) {
	page, err := paginator.Fetch(ctx, func(ctx context.Context, p paginator.ListParams) ([]model.Backup, error) {
		items, err := uc.sgs.ListBackups(ctx, sc.Token, sgsclient.ListOptions{
			Limit:  p.Limit,
			Marker: p.Marker,
			Sort:   p.Sort,
		})
		if err != nil {
			return nil, err
		}
		out := make([]model.Backup, 0, len(items))
		for i := range items {
			out = append(out, *model.NewBackupFromSGS(&items[i]))
		}
		return out, nil
	}, input.Page)
	metrics.ObservePageFetch(model.ResourceBackup, err)
	if err != nil {
		uc.l.Errorf(ctx, "backup.usecase.List: %v", err)
		return backup.ListOutput{Page: page}, err
	}

	volumes, err := uc.lookup.VolumeIndex(ctx, sc)
	if err != nil {
		uc.l.Warnf(ctx, "backup.usecase.List: lookup VolumeIndex failed: %v", err)
	}

	return backup.ListOutput{Page: page, Volumes: volumes}, nil
}

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id string) (backup.GetOutput, error) {
	b, err := uc.sgs.GetBackup(ctx, sc.Token, id)
	if err != nil {
		uc.l.Errorf(ctx, "backup.usecase.Get: sgs GetBackup %s failed: %v", id, err)
		return backup.GetOutput{}, mapSGSError(err, backup.ErrBackupNotFound)
	}

	out := backup.GetOutput{Backup: *model.NewBackupFromSGS(b)}
	v, err := uc.sgs.GetVolume(ctx, sc.Token, b.VolumeID)
	if err != nil {
		uc.l.Warnf(ctx, "backup.usecase.Get: sgs GetVolume %s failed: %v", b.VolumeID, err)
		return out, nil
	}
	out.Volume = model.NewVolumeFromSGS(v)
	return out, nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input backup.CreateInput) (model.Backup, error) {
	if input.Name == "" {
		return model.Backup{}, backup.ErrNameRequired
	}

	b, err := uc.sgs.CreateBackup(ctx, sc.Token, sgsclient.CreateBackupRequest{
		VolumeID:    input.VolumeID,
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "backup.usecase.Create: sgs CreateBackup on %s failed: %v", input.VolumeID, err)
		return model.Backup{}, mapSGSError(err, backup.ErrVolumeNotFound)
	}

	uc.record(ctx, sc, actionlog.ActionCreate, b.ID)
	return *model.NewBackupFromSGS(b), nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.sgs.DeleteBackup(ctx, sc.Token, id); err != nil {
		uc.l.Errorf(ctx, "backup.usecase.Delete: sgs DeleteBackup %s failed: %v", id, err)
		return mapSGSError(err, backup.ErrBackupNotFound)
	}

	uc.record(ctx, sc, actionlog.ActionDelete, id)
	return nil
}

// Restore overwrites the target volume, so the cached volume list is dropped.
func (uc *implUseCase) Restore(ctx context.Context, sc model.Scope, input backup.RestoreInput) error {
	if input.VolumeID == "" {
		return backup.ErrTargetVolumeNeeded
	}

	if err := uc.sgs.RestoreBackup(ctx, sc.Token, input.ID, input.VolumeID); err != nil {
		uc.l.Errorf(ctx, "backup.usecase.Restore: sgs RestoreBackup %s to %s failed: %v", input.ID, input.VolumeID, err)
		return mapSGSError(err, backup.ErrBackupNotFound)
	}

	uc.lookup.InvalidateVolumes(ctx, sc)
	uc.record(ctx, sc, actionlog.ActionRestore, input.ID)
	return nil
}

func (uc *implUseCase) record(ctx context.Context, sc model.Scope, action, id string) {
	uc.recorder.Record(ctx, sc, actionlog.RecordInput{
		Action:       action,
		ResourceType: model.ResourceBackup,
		ResourceID:   id,
	})
}

func mapSGSError(err, notFound error) error {
	if errors.Is(err, sgsclient.ErrNotFound) {
		return fmt.Errorf("%w: %w", notFound, err)
	}
	return fmt.Errorf("%w: %w", backup.ErrGatewayFailed, err)
}

package usecase

import (
	"context"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/model"
	"sg-console-srv/internal/replication"
	"sg-console-srv/pkg/metrics"
	"sg-console-srv/pkg/paginator"
	"sg-console-srv/pkg/sgsclient"
)

// List pages the caller's replications and resolves their master and slave volumes.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input replication.ListInput) (replication.ListOutput, error) {
	page, err := paginator.Fetch(ctx, func(ctx context.Context, p paginator.ListParams) ([]model.Replication, error) {
		items, err := uc.sgs.ListReplications(ctx, sc.Token, sgsclient.ListOptions{
			Limit:  p.Limit,
			Marker: p.Marker,
			Sort:   p.Sort,
		})
		if err != nil {
			return nil, err
		}
		out := make([]model.Replication, 0, len(items))
		for i := range items {
			out = append(out, *model.NewReplicationFromSGS(&items[i]))
		}
		return out, nil
	}, input.Page)
	metrics.ObservePageFetch(model.ResourceReplication, err)
	if err != nil {
		uc.l.Errorf(ctx, "replication.usecase.List: %v", err)
		return replication.ListOutput{Page: page}, err
	}

	volumes, err := uc.lookup.VolumeIndex(ctx, sc)
	if err != nil {
		uc.l.Warnf(ctx, "replication.usecase.List: lookup VolumeIndex failed: %v", err)
	}

	return replication.ListOutput{Page: page, Volumes: volumes}, nil
}

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id string) (replication.GetOutput, error) {
	r, err := uc.sgs.GetReplication(ctx, sc.Token, id)
	if err != nil {
		uc.l.Errorf(ctx, "replication.usecase.Get: sgs GetReplication %s failed: %v", id, err)
		return replication.GetOutput{}, mapSGSError(err, replication.ErrReplicationNotFound)
	}

	return replication.GetOutput{
		Replication:  *model.NewReplicationFromSGS(r),
		MasterVolume: uc.volumeOrNil(ctx, sc, r.MasterVolume),
		SlaveVolume:  uc.volumeOrNil(ctx, sc, r.SlaveVolume),
	}, nil
}

func (uc *implUseCase) volumeOrNil(ctx context.Context, sc model.Scope, id string) *model.Volume {
	if id == "" {
		return nil
	}
	v, err := uc.sgs.GetVolume(ctx, sc.Token, id)
	if err != nil {
		uc.l.Warnf(ctx, "replication.usecase.volumeOrNil: sgs GetVolume %s failed: %v", id, err)
		return nil
	}
	return model.NewVolumeFromSGS(v)
}

// Create pairs two distinct volumes living in different availability zones.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input replication.CreateInput) (model.Replication, error) {
	if input.MasterVolume == "" {
		return model.Replication{}, replication.ErrMasterVolumeRequired
	}
	if input.SlaveVolume == "" {
		return model.Replication{}, replication.ErrSlaveVolumeRequired
	}
	if input.MasterVolume == input.SlaveVolume {
		return model.Replication{}, replication.ErrSameVolume
	}

	master, err := uc.sgs.GetVolume(ctx, sc.Token, input.MasterVolume)
	if err != nil {
		uc.l.Errorf(ctx, "replication.usecase.Create: sgs GetVolume %s failed: %v", input.MasterVolume, err)
		return model.Replication{}, mapSGSError(err, replication.ErrVolumeNotFound)
	}
	slave, err := uc.sgs.GetVolume(ctx, sc.Token, input.SlaveVolume)
	if err != nil {
		uc.l.Errorf(ctx, "replication.usecase.Create: sgs GetVolume %s failed: %v", input.SlaveVolume, err)
		return model.Replication{}, mapSGSError(err, replication.ErrVolumeNotFound)
	}
	if master.AvailabilityZone == slave.AvailabilityZone {
		return model.Replication{}, replication.ErrSameAvailabilityZone
	}

	r, err := uc.sgs.CreateReplication(ctx, sc.Token, sgsclient.CreateReplicationRequest{
		MasterVolume: input.MasterVolume,
		SlaveVolume:  input.SlaveVolume,
		Name:         input.Name,
		Description:  input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "replication.usecase.Create: sgs CreateReplication failed: %v", err)
		return model.Replication{}, mapSGSError(err, replication.ErrVolumeNotFound)
	}

	uc.mutated(ctx, sc, actionlog.ActionCreate, r.ID)
	return *model.NewReplicationFromSGS(r), nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input replication.UpdateInput) (model.Replication, error) {
	r, err := uc.sgs.UpdateReplication(ctx, sc.Token, input.ID, sgsclient.UpdateRequest{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "replication.usecase.Update: sgs UpdateReplication %s failed: %v", input.ID, err)
		return model.Replication{}, mapSGSError(err, replication.ErrReplicationNotFound)
	}

	uc.mutated(ctx, sc, actionlog.ActionUpdate, input.ID)
	return *model.NewReplicationFromSGS(r), nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return uc.act(ctx, sc, id, actionlog.ActionDelete, uc.sgs.DeleteReplication)
}

func (uc *implUseCase) Enable(ctx context.Context, sc model.Scope, id string) error {
	return uc.act(ctx, sc, id, actionlog.ActionEnable, uc.sgs.EnableReplication)
}

func (uc *implUseCase) Disable(ctx context.Context, sc model.Scope, id string) error {
	return uc.act(ctx, sc, id, actionlog.ActionDisable, uc.sgs.DisableReplication)
}

func (uc *implUseCase) Failover(ctx context.Context, sc model.Scope, id string) error {
	return uc.act(ctx, sc, id, actionlog.ActionFailover, uc.sgs.FailoverReplication)
}

func (uc *implUseCase) Reverse(ctx context.Context, sc model.Scope, id string) error {
	return uc.act(ctx, sc, id, actionlog.ActionReverse, uc.sgs.ReverseReplication)
}

func (uc *implUseCase) act(ctx context.Context, sc model.Scope, id, action string,
	call func(ctx context.Context, token, id string) error) error {
	if err := call(ctx, sc.Token, id); err != nil {
		uc.l.Errorf(ctx, "replication.usecase.%s: sgs call on %s failed: %v", action, id, err)
		return mapSGSError(err, replication.ErrReplicationNotFound)
	}

	uc.mutated(ctx, sc, action, id)
	return nil
}

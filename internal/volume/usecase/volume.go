package usecase

import (
	"context"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/model"
	"sg-console-srv/internal/volume"
	"sg-console-srv/pkg/metrics"
	"sg-console-srv/pkg/paginator"
	"sg-console-srv/pkg/sgsclient"
)

// List pages the caller's volumes, optionally filtered by status.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input volume.ListInput) (volume.ListOutput, error) {
	var filters map[string]string
	if input.Status != "" {
		filters = map[string]string{"status": input.Status}
	}

	page, err := paginator.Fetch(ctx, func(ctx context.Context, p paginator.ListParams) ([]model.Volume, error) {
		items, err := uc.sgs.ListVolumes(ctx, sc.Token, sgsclient.ListOptions{
			Limit:   p.Limit,
			Marker:  p.Marker,
			Sort:    p.Sort,
			Filters: filters,
		})
		if err != nil {
			return nil, err
		}
		return toVolumes(items), nil
	}, input.Page)
	metrics.ObservePageFetch(model.ResourceVolume, err)
	if err != nil {
		uc.l.Errorf(ctx, "volume.usecase.List: %v", err)
		return volume.ListOutput{Page: page}, err
	}

	return volume.ListOutput{Page: page}, nil
}

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id string) (model.Volume, error) {
	v, err := uc.sgs.GetVolume(ctx, sc.Token, id)
	if err != nil {
		uc.l.Errorf(ctx, "volume.usecase.Get: sgs GetVolume %s failed: %v", id, err)
		return model.Volume{}, mapSGSError(err)
	}

	vol := model.NewVolumeFromSGS(v)
	nameAttachments(vol)
	return *vol, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input volume.UpdateInput) (model.Volume, error) {
	v, err := uc.sgs.UpdateVolume(ctx, sc.Token, input.ID, sgsclient.UpdateRequest{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "volume.usecase.Update: sgs UpdateVolume %s failed: %v", input.ID, err)
		return model.Volume{}, mapSGSError(err)
	}

	uc.mutated(ctx, sc, actionlog.ActionUpdate, input.ID)
	return *model.NewVolumeFromSGS(v), nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.sgs.DeleteVolume(ctx, sc.Token, id); err != nil {
		uc.l.Errorf(ctx, "volume.usecase.Delete: sgs DeleteVolume %s failed: %v", id, err)
		return mapSGSError(err)
	}

	uc.mutated(ctx, sc, actionlog.ActionDelete, id)
	return nil
}

func (uc *implUseCase) Enable(ctx context.Context, sc model.Scope, input volume.EnableInput) error {
	err := uc.sgs.EnableVolume(ctx, sc.Token, input.ID, sgsclient.UpdateRequest{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "volume.usecase.Enable: sgs EnableVolume %s failed: %v", input.ID, err)
		return mapSGSError(err)
	}

	uc.mutated(ctx, sc, actionlog.ActionEnable, input.ID)
	return nil
}

func (uc *implUseCase) Disable(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.sgs.DisableVolume(ctx, sc.Token, id); err != nil {
		uc.l.Errorf(ctx, "volume.usecase.Disable: sgs DisableVolume %s failed: %v", id, err)
		return mapSGSError(err)
	}

	uc.mutated(ctx, sc, actionlog.ActionDisable, id)
	return nil
}

func (uc *implUseCase) Attach(ctx context.Context, sc model.Scope, input volume.AttachInput) error {
	if input.InstanceID == "" {
		return volume.ErrInstanceRequired
	}
	mode := input.Mode
	if mode == "" {
		mode = volume.DefaultAttachMode
	}

	err := uc.sgs.AttachVolume(ctx, sc.Token, input.ID, sgsclient.AttachRequest{
		InstanceUUID: input.InstanceID,
		Mountpoint:   input.Mountpoint,
		Mode:         mode,
		HostName:     input.HostName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "volume.usecase.Attach: sgs AttachVolume %s failed: %v", input.ID, err)
		return mapSGSError(err)
	}

	uc.mutated(ctx, sc, actionlog.ActionAttach, input.ID)
	return nil
}

func (uc *implUseCase) Detach(ctx context.Context, sc model.Scope, input volume.DetachInput) error {
	if err := uc.sgs.DetachVolume(ctx, sc.Token, input.ID, input.AttachmentID); err != nil {
		uc.l.Errorf(ctx, "volume.usecase.Detach: sgs DetachVolume %s failed: %v", input.ID, err)
		return mapSGSError(err)
	}

	uc.mutated(ctx, sc, actionlog.ActionDetach, input.ID)
	return nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/model"
	"sg-console-srv/internal/volume"
	"sg-console-srv/pkg/sgsclient"
)

// mapSGSError keeps the gateway error in the chain so delivery can surface its status.
func mapSGSError(err error) error {
	if errors.Is(err, sgsclient.ErrNotFound) {
		return fmt.Errorf("%w: %w", volume.ErrVolumeNotFound, err)
	}
	return fmt.Errorf("%w: %w", volume.ErrGatewayFailed, err)
}

func (uc *implUseCase) mutated(ctx context.Context, sc model.Scope, action, id string) {
	uc.lookup.InvalidateVolumes(ctx, sc)
	uc.recorder.Record(ctx, sc, actionlog.RecordInput{
		Action:       action,
		ResourceType: model.ResourceVolume,
		ResourceID:   id,
	})
}

// nameAttachments fills instance names. Attachments without a server id are shown as unknown.
func nameAttachments(v *model.Volume) {
	for i := range v.Attachments {
		if v.Attachments[i].ServerID == "" {
			v.Attachments[i].InstanceName = model.UnknownInstance
			continue
		}
		v.Attachments[i].InstanceName = v.Attachments[i].ServerID
	}
}

func toVolumes(items []sgsclient.Volume) []model.Volume {
	out := make([]model.Volume, 0, len(items))
	for i := range items {
		v := model.NewVolumeFromSGS(&items[i])
		nameAttachments(v)
		out = append(out, *v)
	}
	return out
}

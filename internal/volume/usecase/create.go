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

// Create creates an empty volume, or one restored from a snapshot or a replication checkpoint.
// A volume from a source can not be smaller than the volume the source was taken of.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input volume.CreateInput) (model.Volume, error) {
	source, err := resolveSource(input)
	if err != nil {
		return model.Volume{}, err
	}
	if input.Size < 1 {
		return model.Volume{}, volume.ErrInvalidSize
	}

	req := sgsclient.CreateVolumeRequest{
		Size:             input.Size,
		Name:             input.Name,
		Description:      input.Description,
		VolumeType:       input.VolumeType,
		AvailabilityZone: input.AvailabilityZone,
	}

	switch source {
	case volume.SourceSnapshot:
		minSize, err := uc.snapshotSourceSize(ctx, sc, input.SnapshotID)
		if err != nil {
			return model.Volume{}, err
		}
		if input.Size < minSize {
			return model.Volume{}, &volume.SizeError{Source: "snapshot", MinSize: minSize}
		}
		// the gateway places it next to the snapshot
		req.SnapshotID = input.SnapshotID
		req.AvailabilityZone = ""
		req.VolumeType = ""
	case volume.SourceCheckpoint:
		minSize, err := uc.checkpointSourceSize(ctx, sc, input.CheckpointID)
		if err != nil {
			return model.Volume{}, err
		}
		if input.Size < minSize {
			return model.Volume{}, &volume.SizeError{Source: "master_volume", MinSize: minSize}
		}
		req.CheckpointID = input.CheckpointID
	}

	v, err := uc.sgs.CreateVolume(ctx, sc.Token, req)
	if err != nil {
		uc.l.Errorf(ctx, "volume.usecase.Create: sgs CreateVolume failed: %v", err)
		return model.Volume{}, fmt.Errorf("%w: %w", volume.ErrGatewayFailed, err)
	}

	uc.mutated(ctx, sc, actionlog.ActionCreate, v.ID)
	return *model.NewVolumeFromSGS(v), nil
}

func resolveSource(input volume.CreateInput) (string, error) {
	switch input.SourceType {
	case "":
		switch {
		case input.SnapshotID != "":
			return volume.SourceSnapshot, nil
		case input.CheckpointID != "":
			return volume.SourceCheckpoint, nil
		}
		return volume.SourceNone, nil
	case volume.SourceNone:
		return volume.SourceNone, nil
	case volume.SourceSnapshot:
		if input.SnapshotID == "" {
			return "", volume.ErrSnapshotSourceRequired
		}
		return volume.SourceSnapshot, nil
	case volume.SourceCheckpoint:
		if input.CheckpointID == "" {
			return "", volume.ErrCheckpointSourceRequired
		}
		return volume.SourceCheckpoint, nil
	default:
		return "", volume.ErrInvalidSourceType
	}
}

// snapshotSourceSize is the size of the volume the snapshot was taken of.
func (uc *implUseCase) snapshotSourceSize(ctx context.Context, sc model.Scope, snapshotID string) (int, error) {
	snap, err := uc.sgs.GetSnapshot(ctx, sc.Token, snapshotID)
	if err != nil {
		uc.l.Errorf(ctx, "volume.usecase.snapshotSourceSize: sgs GetSnapshot %s failed: %v", snapshotID, err)
		return 0, sourceError(err)
	}
	vol, err := uc.sgs.GetVolume(ctx, sc.Token, snap.VolumeID)
	if err != nil {
		uc.l.Errorf(ctx, "volume.usecase.snapshotSourceSize: sgs GetVolume %s failed: %v", snap.VolumeID, err)
		return 0, sourceError(err)
	}
	return vol.Size, nil
}

// checkpointSourceSize is the size of the master volume of the checkpoint's replication.
func (uc *implUseCase) checkpointSourceSize(ctx context.Context, sc model.Scope, checkpointID string) (int, error) {
	cp, err := uc.sgs.GetCheckpoint(ctx, sc.Token, checkpointID)
	if err != nil {
		uc.l.Errorf(ctx, "volume.usecase.checkpointSourceSize: sgs GetCheckpoint %s failed: %v", checkpointID, err)
		return 0, sourceError(err)
	}
	rep, err := uc.sgs.GetReplication(ctx, sc.Token, cp.ReplicationID)
	if err != nil {
		uc.l.Errorf(ctx, "volume.usecase.checkpointSourceSize: sgs GetReplication %s failed: %v", cp.ReplicationID, err)
		return 0, sourceError(err)
	}
	vol, err := uc.sgs.GetVolume(ctx, sc.Token, rep.MasterVolume)
	if err != nil {
		uc.l.Errorf(ctx, "volume.usecase.checkpointSourceSize: sgs GetVolume %s failed: %v", rep.MasterVolume, err)
		return 0, sourceError(err)
	}
	return vol.Size, nil
}

func sourceError(err error) error {
	if errors.Is(err, sgsclient.ErrNotFound) {
		return fmt.Errorf("%w: %w", volume.ErrSourceNotFound, err)
	}
	return fmt.Errorf("%w: %w", volume.ErrGatewayFailed, err)
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/lookup"
	"sg-console-srv/internal/model"
	"sg-console-srv/internal/volume"
	"sg-console-srv/pkg/log"
	"sg-console-srv/pkg/paginator"
	"sg-console-srv/pkg/sgsclient"
	"sg-console-srv/pkg/sgsclient/sgsfake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup struct {
	lookup.UseCase
	volumeInvalidations int
}

func (f *fakeLookup) InvalidateVolumes(ctx context.Context, sc model.Scope) {
	f.volumeInvalidations++
}

type fakeRecorder struct {
	records []actionlog.RecordInput
}

func (f *fakeRecorder) Record(ctx context.Context, sc model.Scope, input actionlog.RecordInput) {
	f.records = append(f.records, input)
}

var testScope = model.Scope{Token: "tok", ProjectID: "p1", UserID: "u1"}

type testDeps struct {
	sgs      *sgsfake.Client
	lookup   *fakeLookup
	recorder *fakeRecorder
}

func newTestUseCase() (volume.UseCase, testDeps) {
	deps := testDeps{
		sgs: &sgsfake.Client{
			Volumes: []sgsclient.Volume{
				{ID: "vol-a", Name: "a", Size: 10, Status: "enabled", Attachments: []sgsclient.Attachment{
					{AttachmentID: "att-1", ServerID: "srv-1", Mountpoint: "/dev/vdb"},
					{AttachmentID: "att-2"},
				}},
				{ID: "vol-b", Name: "b", Size: 20, Status: "available"},
				{ID: "vol-c", Name: "c", Size: 5, Status: "enabled"},
			},
			Snapshots:    []sgsclient.Snapshot{{ID: "snap-a", VolumeID: "vol-b", Size: 20}},
			Replications: []sgsclient.Replication{{ID: "rep-a", MasterVolume: "vol-b", SlaveVolume: "vol-c"}},
			Checkpoints:  []sgsclient.Checkpoint{{ID: "cp-a", ReplicationID: "rep-a"}},
		},
		lookup:   &fakeLookup{},
		recorder: &fakeRecorder{},
	}
	return New(log.NewNop(), deps.sgs, deps.lookup, deps.recorder), deps
}

func TestList(t *testing.T) {
	t.Run("first page newest first", func(t *testing.T) {
		uc, deps := newTestUseCase()
		out, err := uc.List(context.Background(), testScope, volume.ListInput{
			Page: paginator.Request{PageSize: 2},
		})
		require.NoError(t, err)
		require.Len(t, out.Page.Items, 2)
		assert.Equal(t, "vol-c", out.Page.Items[0].ID)
		assert.Equal(t, "vol-b", out.Page.Items[1].ID)
		assert.True(t, out.Page.HasMore)
		assert.False(t, out.Page.HasPrev)

		require.Len(t, deps.sgs.ListCalls, 1)
		assert.Equal(t, 3, deps.sgs.ListCalls[0].Limit)
		assert.Equal(t, "created_at:desc", deps.sgs.ListCalls[0].Sort)
		assert.Equal(t, []string{"tok"}, deps.sgs.Tokens)
	})

	t.Run("status filter and attachment names", func(t *testing.T) {
		uc, deps := newTestUseCase()
		out, err := uc.List(context.Background(), testScope, volume.ListInput{
			Page:   paginator.Request{PageSize: 5},
			Status: "enabled",
		})
		require.NoError(t, err)
		require.Len(t, out.Page.Items, 2)
		assert.Equal(t, map[string]string{"status": "enabled"}, deps.sgs.ListCalls[0].Filters)

		a := out.Page.Items[1]
		require.Len(t, a.Attachments, 2)
		assert.Equal(t, "srv-1", a.Attachments[0].InstanceName)
		assert.Equal(t, model.UnknownInstance, a.Attachments[1].InstanceName)
	})

	t.Run("gateway failure", func(t *testing.T) {
		uc, deps := newTestUseCase()
		deps.sgs.ListErr = errors.New("connection refused")
		out, err := uc.List(context.Background(), testScope, volume.ListInput{Page: paginator.Request{PageSize: 2}})
		assert.ErrorIs(t, err, paginator.ErrRetrievalFailed)
		assert.Empty(t, out.Page.Items)
		assert.False(t, out.Page.HasMore)
		assert.False(t, out.Page.HasPrev)
	})
}

func TestGet(t *testing.T) {
	uc, _ := newTestUseCase()

	v, err := uc.Get(context.Background(), testScope, "vol-a")
	require.NoError(t, err)
	assert.Equal(t, model.UnknownInstance, v.Attachments[1].InstanceName)

	_, err = uc.Get(context.Background(), testScope, "missing")
	assert.ErrorIs(t, err, volume.ErrVolumeNotFound)
	assert.ErrorIs(t, err, sgsclient.ErrNotFound)
}

func TestCreate(t *testing.T) {
	tcs := map[string]struct {
		input   volume.CreateInput
		wantErr error
		check   func(t *testing.T, req sgsclient.CreateVolumeRequest)
	}{
		"empty volume": {
			input: volume.CreateInput{Name: "new", Size: 1, AvailabilityZone: "az1", VolumeType: "ssd"},
			check: func(t *testing.T, req sgsclient.CreateVolumeRequest) {
				assert.Equal(t, "az1", req.AvailabilityZone)
				assert.Equal(t, "ssd", req.VolumeType)
				assert.Empty(t, req.SnapshotID)
			},
		},
		"zero size": {
			input:   volume.CreateInput{Size: 0},
			wantErr: volume.ErrInvalidSize,
		},
		"unknown source type": {
			input:   volume.CreateInput{Size: 1, SourceType: "image"},
			wantErr: volume.ErrInvalidSourceType,
		},
		"snapshot source missing": {
			input:   volume.CreateInput{Size: 1, SourceType: volume.SourceSnapshot},
			wantErr: volume.ErrSnapshotSourceRequired,
		},
		"checkpoint source missing": {
			input:   volume.CreateInput{Size: 1, SourceType: volume.SourceCheckpoint},
			wantErr: volume.ErrCheckpointSourceRequired,
		},
		"snapshot smaller than source volume": {
			input:   volume.CreateInput{Size: 10, SnapshotID: "snap-a"},
			wantErr: volume.ErrSizeTooSmall,
		},
		"snapshot not found": {
			input:   volume.CreateInput{Size: 10, SnapshotID: "snap-x"},
			wantErr: volume.ErrSourceNotFound,
		},
		"from snapshot": {
			input: volume.CreateInput{Size: 20, SnapshotID: "snap-a", AvailabilityZone: "az1", VolumeType: "ssd"},
			check: func(t *testing.T, req sgsclient.CreateVolumeRequest) {
				assert.Equal(t, "snap-a", req.SnapshotID)
				assert.Empty(t, req.AvailabilityZone)
				assert.Empty(t, req.VolumeType)
			},
		},
		"checkpoint smaller than master volume": {
			input:   volume.CreateInput{Size: 19, SourceType: volume.SourceCheckpoint, CheckpointID: "cp-a"},
			wantErr: volume.ErrSizeTooSmall,
		},
		"from checkpoint": {
			input: volume.CreateInput{Size: 25, SourceType: volume.SourceCheckpoint, CheckpointID: "cp-a"},
			check: func(t *testing.T, req sgsclient.CreateVolumeRequest) {
				assert.Equal(t, "cp-a", req.CheckpointID)
				assert.Equal(t, 25, req.Size)
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc, deps := newTestUseCase()
			v, err := uc.Create(context.Background(), testScope, tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, deps.sgs.CallsTo("CreateVolume"))
				assert.Empty(t, deps.recorder.records)
				return
			}
			require.NoError(t, err)
			calls := deps.sgs.CallsTo("CreateVolume")
			require.Len(t, calls, 1)
			tc.check(t, calls[0].Body.(sgsclient.CreateVolumeRequest))

			assert.Equal(t, calls[0].ID, v.ID)
			assert.Equal(t, []actionlog.RecordInput{{Action: actionlog.ActionCreate, ResourceType: model.ResourceVolume, ResourceID: v.ID}}, deps.recorder.records)
			assert.Equal(t, 1, deps.lookup.volumeInvalidations)
		})
	}
}

func TestCreate_SizeErrorMessage(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.Create(context.Background(), testScope, volume.CreateInput{Size: 5, SnapshotID: "snap-a"})

	var sizeErr *volume.SizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, "The volume size cannot be less than the snapshot size (20GiB)", sizeErr.Error())
}

func TestActions(t *testing.T) {
	ctx := context.Background()
	tcs := map[string]struct {
		run    func(uc volume.UseCase) error
		method string
		action string
		body   any
	}{
		"delete": {
			run:    func(uc volume.UseCase) error { return uc.Delete(ctx, testScope, "vol-a") },
			method: "DeleteVolume",
			action: actionlog.ActionDelete,
		},
		"enable": {
			run: func(uc volume.UseCase) error {
				return uc.Enable(ctx, testScope, volume.EnableInput{ID: "vol-a", Name: "n", Description: "d"})
			},
			method: "EnableVolume",
			action: actionlog.ActionEnable,
			body:   sgsclient.UpdateRequest{Name: "n", Description: "d"},
		},
		"disable": {
			run:    func(uc volume.UseCase) error { return uc.Disable(ctx, testScope, "vol-a") },
			method: "DisableVolume",
			action: actionlog.ActionDisable,
		},
		"attach defaults mode": {
			run: func(uc volume.UseCase) error {
				return uc.Attach(ctx, testScope, volume.AttachInput{ID: "vol-a", InstanceID: "srv-2", Mountpoint: "10.0.0.5"})
			},
			method: "AttachVolume",
			action: actionlog.ActionAttach,
			body:   sgsclient.AttachRequest{InstanceUUID: "srv-2", Mountpoint: "10.0.0.5", Mode: "rw"},
		},
		"detach": {
			run: func(uc volume.UseCase) error {
				return uc.Detach(ctx, testScope, volume.DetachInput{ID: "vol-a", AttachmentID: "att-1"})
			},
			method: "DetachVolume",
			action: actionlog.ActionDetach,
			body:   "att-1",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc, deps := newTestUseCase()
			require.NoError(t, tc.run(uc))

			calls := deps.sgs.CallsTo(tc.method)
			require.Len(t, calls, 1)
			assert.Equal(t, "vol-a", calls[0].ID)
			assert.Equal(t, tc.body, calls[0].Body)
			assert.Equal(t, []actionlog.RecordInput{{Action: tc.action, ResourceType: model.ResourceVolume, ResourceID: "vol-a"}}, deps.recorder.records)
			assert.Equal(t, 1, deps.lookup.volumeInvalidations)
		})
	}
}

func TestActions_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("attach without instance", func(t *testing.T) {
		uc, deps := newTestUseCase()
		err := uc.Attach(ctx, testScope, volume.AttachInput{ID: "vol-a"})
		assert.ErrorIs(t, err, volume.ErrInstanceRequired)
		assert.Empty(t, deps.sgs.Calls)
	})

	t.Run("not found is not recorded", func(t *testing.T) {
		uc, deps := newTestUseCase()
		err := uc.Delete(ctx, testScope, "missing")
		assert.ErrorIs(t, err, volume.ErrVolumeNotFound)
		assert.Empty(t, deps.recorder.records)
		assert.Zero(t, deps.lookup.volumeInvalidations)
	})

	t.Run("gateway rejection keeps status", func(t *testing.T) {
		uc, deps := newTestUseCase()
		deps.sgs.Err = &sgsclient.APIError{StatusCode: 400, Message: "Invalid volume: status must be available"}
		err := uc.Disable(ctx, testScope, "vol-a")
		assert.ErrorIs(t, err, volume.ErrGatewayFailed)

		var apiErr *sgsclient.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.StatusCode)
	})
}

func TestUpdate(t *testing.T) {
	uc, deps := newTestUseCase()
	v, err := uc.Update(context.Background(), testScope, volume.UpdateInput{ID: "vol-b", Name: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", v.Name)
	assert.Equal(t, []actionlog.RecordInput{{Action: actionlog.ActionUpdate, ResourceType: model.ResourceVolume, ResourceID: "vol-b"}}, deps.recorder.records)
}

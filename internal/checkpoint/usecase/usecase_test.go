package usecase

import (
	"context"
	"testing"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/checkpoint"
	"sg-console-srv/internal/lookup"
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/log"
	"sg-console-srv/pkg/paginator"
	"sg-console-srv/pkg/sgsclient"
	"sg-console-srv/pkg/sgsclient/sgsfake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup struct {
	lookup.UseCase
	replications             map[string]model.Replication
	err                      error
	volumeInvalidations      int
	replicationInvalidations int
}

func (f *fakeLookup) ReplicationIndex(ctx context.Context, sc model.Scope) (map[string]model.Replication, error) {
	return f.replications, f.err
}

func (f *fakeLookup) InvalidateVolumes(ctx context.Context, sc model.Scope) {
	f.volumeInvalidations++
}

func (f *fakeLookup) InvalidateReplications(ctx context.Context, sc model.Scope) {
	f.replicationInvalidations++
}

type fakeRecorder struct {
	records []actionlog.RecordInput
}

func (f *fakeRecorder) Record(ctx context.Context, sc model.Scope, input actionlog.RecordInput) {
	f.records = append(f.records, input)
}

var testScope = model.Scope{Token: "tok", ProjectID: "p1"}

func newTestUseCase() (checkpoint.UseCase, *sgsfake.Client, *fakeLookup, *fakeRecorder) {
	sgs := &sgsfake.Client{
		Replications: []sgsclient.Replication{{ID: "rep-a", Name: "dr"}},
		Checkpoints: []sgsclient.Checkpoint{
			{ID: "cp-a", Name: "first", ReplicationID: "rep-a"},
			{ID: "cp-b", Name: "second", ReplicationID: "rep-a"},
			{ID: "cp-c", Name: "third", ReplicationID: "rep-a"},
		},
	}
	lk := &fakeLookup{replications: map[string]model.Replication{"rep-a": {ID: "rep-a", Name: "dr"}}}
	rec := &fakeRecorder{}
	return New(log.NewNop(), sgs, lk, rec), sgs, lk, rec
}

func TestList(t *testing.T) {
	t.Run("first page resolves replications", func(t *testing.T) {
		uc, sgs, _, _ := newTestUseCase()
		out, err := uc.List(context.Background(), testScope, checkpoint.ListInput{Page: paginator.Request{PageSize: 2}})
		require.NoError(t, err)
		require.Len(t, out.Page.Items, 2)
		assert.Equal(t, "cp-c", out.Page.Items[0].ID)
		assert.Equal(t, "cp-b", out.Page.Items[1].ID)
		assert.True(t, out.Page.HasMore)
		assert.False(t, out.Page.HasPrev)
		assert.Equal(t, "dr", out.Replications["rep-a"].Name)
		assert.Equal(t, 3, sgs.ListCalls[0].Limit)
	})

	t.Run("next page", func(t *testing.T) {
		uc, _, _, _ := newTestUseCase()
		out, err := uc.List(context.Background(), testScope, checkpoint.ListInput{
			Page: paginator.Request{Marker: "cp-b", Direction: paginator.DirectionDesc, PageSize: 2},
		})
		require.NoError(t, err)
		require.Len(t, out.Page.Items, 1)
		assert.Equal(t, "cp-a", out.Page.Items[0].ID)
		assert.False(t, out.Page.HasMore)
		assert.True(t, out.Page.HasPrev)
	})

	t.Run("lookup failure leaves names unresolved", func(t *testing.T) {
		uc, _, lk, _ := newTestUseCase()
		lk.replications, lk.err = nil, lookup.ErrReplicationLookupFailed
		out, err := uc.List(context.Background(), testScope, checkpoint.ListInput{Page: paginator.Request{PageSize: 5}})
		require.NoError(t, err)
		assert.Len(t, out.Page.Items, 3)
		assert.Nil(t, out.Replications)
	})
}

func TestGet(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	o, err := uc.Get(context.Background(), testScope, "cp-a")
	require.NoError(t, err)
	require.NotNil(t, o.Replication)
	assert.Equal(t, "dr", o.Replication.Name)

	_, err = uc.Get(context.Background(), testScope, "cp-x")
	assert.ErrorIs(t, err, checkpoint.ErrCheckpointNotFound)
}

func TestCreate(t *testing.T) {
	uc, sgs, _, rec := newTestUseCase()

	_, err := uc.Create(context.Background(), testScope, checkpoint.CreateInput{ReplicationID: "rep-a", Name: "  "})
	assert.ErrorIs(t, err, checkpoint.ErrNameRequired)
	assert.Empty(t, sgs.Calls)

	cp, err := uc.Create(context.Background(), testScope, checkpoint.CreateInput{ReplicationID: "rep-a", Name: "nightly"})
	require.NoError(t, err)
	assert.Equal(t, "rep-a", cp.ReplicationID)
	assert.Equal(t, []actionlog.RecordInput{{Action: actionlog.ActionCreate, ResourceType: model.ResourceCheckpoint, ResourceID: cp.ID}}, rec.records)
}

func TestRollback(t *testing.T) {
	t.Run("rolls back", func(t *testing.T) {
		uc, sgs, lk, rec := newTestUseCase()
		require.NoError(t, uc.Rollback(context.Background(), testScope, "cp-a"))
		require.Len(t, sgs.CallsTo("RollbackCheckpoint"), 1)
		assert.Equal(t, 1, lk.volumeInvalidations)
		assert.Equal(t, 1, lk.replicationInvalidations)
		assert.Equal(t, actionlog.ActionRollback, rec.records[0].Action)
	})

	t.Run("unknown checkpoint", func(t *testing.T) {
		uc, _, lk, rec := newTestUseCase()
		err := uc.Rollback(context.Background(), testScope, "cp-x")
		assert.ErrorIs(t, err, checkpoint.ErrCheckpointNotFound)
		assert.Zero(t, lk.volumeInvalidations)
		assert.Empty(t, rec.records)
	})
}

func TestUpdateDelete(t *testing.T) {
	uc, sgs, _, rec := newTestUseCase()

	cp, err := uc.Update(context.Background(), testScope, checkpoint.UpdateInput{ID: "cp-a", Name: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", cp.Name)

	require.NoError(t, uc.Delete(context.Background(), testScope, "cp-a"))
	assert.Len(t, sgs.CallsTo("DeleteCheckpoint"), 1)
	assert.Len(t, rec.records, 2)

	sgs.Err = &sgsclient.APIError{StatusCode: 500, Message: "down"}
	err = uc.Delete(context.Background(), testScope, "cp-a")
	assert.ErrorIs(t, err, checkpoint.ErrGatewayFailed)
}

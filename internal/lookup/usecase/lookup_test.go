package usecase

import (
	"context"
	"errors"
	"testing"

	"sg-console-srv/internal/lookup"
	"sg-console-srv/internal/lookup/repository"
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/log"
	"sg-console-srv/pkg/sgsclient"
	"sg-console-srv/pkg/sgsclient/sgsfake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCache struct {
	volumes      map[string][]model.Volume
	replications map[string][]model.Replication
	tokens       map[string]sgsclient.TokenScope
	err          error
}

func newMemCache() *memCache {
	return &memCache{
		volumes:      map[string][]model.Volume{},
		replications: map[string][]model.Replication{},
		tokens:       map[string]sgsclient.TokenScope{},
	}
}

func (m *memCache) GetVolumes(_ context.Context, projectID string) ([]model.Volume, error) {
	if m.err != nil {
		return nil, m.err
	}
	v, ok := m.volumes[projectID]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return v, nil
}

func (m *memCache) SaveVolumes(_ context.Context, projectID string, volumes []model.Volume) error {
	m.volumes[projectID] = volumes
	return nil
}

func (m *memCache) DeleteVolumes(_ context.Context, projectID string) error {
	delete(m.volumes, projectID)
	return nil
}

func (m *memCache) GetReplications(_ context.Context, projectID string) ([]model.Replication, error) {
	if m.err != nil {
		return nil, m.err
	}
	r, ok := m.replications[projectID]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return r, nil
}

func (m *memCache) SaveReplications(_ context.Context, projectID string, replications []model.Replication) error {
	m.replications[projectID] = replications
	return nil
}

func (m *memCache) DeleteReplications(_ context.Context, projectID string) error {
	delete(m.replications, projectID)
	return nil
}

func (m *memCache) GetTokenScope(_ context.Context, token string) (sgsclient.TokenScope, error) {
	if m.err != nil {
		return sgsclient.TokenScope{}, m.err
	}
	ts, ok := m.tokens[token]
	if !ok {
		return sgsclient.TokenScope{}, repository.ErrCacheMiss
	}
	return ts, nil
}

func (m *memCache) SaveTokenScope(_ context.Context, token string, ts sgsclient.TokenScope) error {
	m.tokens[token] = ts
	return nil
}

var sc = model.Scope{Token: "tok", ProjectID: "p1"}

func TestVolumeIndex_CachesPerProject(t *testing.T) {
	ctx := context.Background()
	sgs := &sgsfake.Client{Volumes: []sgsclient.Volume{{ID: "v1", Name: "a"}, {ID: "v2", Name: "b"}}}
	cache := newMemCache()
	uc := New(log.NewNop(), sgs, cache)

	idx, err := uc.VolumeIndex(ctx, sc)
	require.NoError(t, err)
	assert.Len(t, idx, 2)
	assert.Equal(t, "b", idx["v2"].Name)
	assert.Len(t, sgs.ListCalls, 1)
	assert.Zero(t, sgs.ListCalls[0].Limit)

	_, err = uc.VolumeIndex(ctx, sc)
	require.NoError(t, err)
	assert.Len(t, sgs.ListCalls, 1, "second lookup is served from cache")

	uc.InvalidateVolumes(ctx, sc)
	_, err = uc.VolumeIndex(ctx, sc)
	require.NoError(t, err)
	assert.Len(t, sgs.ListCalls, 2)
}

func TestVolumeIndex_NoProjectSkipsCache(t *testing.T) {
	ctx := context.Background()
	sgs := &sgsfake.Client{Volumes: []sgsclient.Volume{{ID: "v1"}}}
	cache := newMemCache()
	uc := New(log.NewNop(), sgs, cache)

	_, err := uc.VolumeIndex(ctx, model.Scope{Token: "tok"})
	require.NoError(t, err)
	_, err = uc.VolumeIndex(ctx, model.Scope{Token: "tok"})
	require.NoError(t, err)

	assert.Len(t, sgs.ListCalls, 2)
	assert.Empty(t, cache.volumes)
}

func TestReplicationIndex_CacheErrorFallsThrough(t *testing.T) {
	ctx := context.Background()
	sgs := &sgsfake.Client{Replications: []sgsclient.Replication{{ID: "r1", Name: "pair"}}}
	cache := newMemCache()
	cache.err = errors.New("redis down")
	uc := New(log.NewNop(), sgs, cache)

	idx, err := uc.ReplicationIndex(ctx, sc)

	require.NoError(t, err)
	assert.Equal(t, "pair", idx["r1"].Name)
}

func TestReplicationIndex_GatewayError(t *testing.T) {
	sgs := &sgsfake.Client{ListErr: errors.New("boom")}
	uc := New(log.NewNop(), sgs, nil)

	_, err := uc.ReplicationIndex(context.Background(), sc)

	assert.ErrorIs(t, err, lookup.ErrReplicationLookupFailed)
}

package redis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	repo "sg-console-srv/internal/lookup/repository"
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/log"
	pkgRedis "sg-console-srv/pkg/redis"
	"sg-console-srv/pkg/sgsclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	mu     sync.Mutex
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value.(string)
	f.ttls[key] = ttl
	return nil
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return "", pkgRedis.ErrNil
	}
	return v, nil
}

func (f *fakeRedis) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func (f *fakeRedis) Close() error                 { return nil }
func (f *fakeRedis) Ping(_ context.Context) error { return nil }

func TestVolumes_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	fr := newFakeRedis()
	r := New(fr, log.NewNop(), 45*time.Second)

	_, err := r.GetVolumes(ctx, "p1")
	assert.ErrorIs(t, err, repo.ErrCacheMiss)

	vols := []model.Volume{{ID: "v1", Name: "data", AvailabilityZone: "az1"}}
	require.NoError(t, r.SaveVolumes(ctx, "p1", vols))
	assert.Equal(t, 45*time.Second, fr.ttls["sg-console:lookup:volumes:p1"])

	got, err := r.GetVolumes(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "data", got[0].Name)

	_, err = r.GetVolumes(ctx, "p2")
	assert.ErrorIs(t, err, repo.ErrCacheMiss)

	require.NoError(t, r.DeleteVolumes(ctx, "p1"))
	_, err = r.GetVolumes(ctx, "p1")
	assert.ErrorIs(t, err, repo.ErrCacheMiss)
}

func TestReplications_CorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	fr := newFakeRedis()
	fr.data[replicationsKey("p1")] = "{not json"
	r := New(fr, log.NewNop(), 0)

	_, err := r.GetReplications(ctx, "p1")
	assert.ErrorIs(t, err, repo.ErrCacheMiss)
}

func TestGet_RedisError(t *testing.T) {
	fr := newFakeRedis()
	fr.getErr = errors.New("connection refused")
	r := New(fr, log.NewNop(), time.Second)

	_, err := r.GetVolumes(context.Background(), "p1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repo.ErrCacheMiss)
}

func TestTokenScope_KeyedByDigest(t *testing.T) {
	ctx := context.Background()
	fr := newFakeRedis()
	r := New(fr, log.NewNop(), time.Minute)

	_, err := r.GetTokenScope(ctx, "secret-token")
	assert.ErrorIs(t, err, repo.ErrCacheMiss)

	require.NoError(t, r.SaveTokenScope(ctx, "secret-token", sgsclient.TokenScope{ProjectID: "p1", UserID: "u1"}))
	for key, value := range fr.data {
		assert.NotContains(t, key, "secret-token")
		assert.NotContains(t, value, "secret-token")
	}

	got, err := r.GetTokenScope(ctx, "secret-token")
	require.NoError(t, err)
	assert.Equal(t, sgsclient.TokenScope{ProjectID: "p1", UserID: "u1"}, got)

	_, err = r.GetTokenScope(ctx, "other-token")
	assert.ErrorIs(t, err, repo.ErrCacheMiss)
}

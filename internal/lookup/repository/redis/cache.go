package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"sg-console-srv/internal/model"
	repo "sg-console-srv/internal/lookup/repository"
	"sg-console-srv/pkg/redis"
	"sg-console-srv/pkg/sgsclient"
)

const keyPrefix = "sg-console:lookup"

func volumesKey(projectID string) string {
	return fmt.Sprintf("%s:volumes:%s", keyPrefix, projectID)
}

func replicationsKey(projectID string) string {
	return fmt.Sprintf("%s:replications:%s", keyPrefix, projectID)
}

func (r *implCacheRepository) GetVolumes(ctx context.Context, projectID string) ([]model.Volume, error) {
	var volumes []model.Volume
	if err := r.get(ctx, volumesKey(projectID), &volumes); err != nil {
		return nil, err
	}
	return volumes, nil
}

func (r *implCacheRepository) SaveVolumes(ctx context.Context, projectID string, volumes []model.Volume) error {
	return r.save(ctx, volumesKey(projectID), volumes)
}

func (r *implCacheRepository) DeleteVolumes(ctx context.Context, projectID string) error {
	if err := r.redis.Delete(ctx, volumesKey(projectID)); err != nil {
		r.l.Errorf(ctx, "lookup.repository.redis.DeleteVolumes: Failed to delete cache: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) GetReplications(ctx context.Context, projectID string) ([]model.Replication, error) {
	var replications []model.Replication
	if err := r.get(ctx, replicationsKey(projectID), &replications); err != nil {
		return nil, err
	}
	return replications, nil
}

func (r *implCacheRepository) SaveReplications(ctx context.Context, projectID string, replications []model.Replication) error {
	return r.save(ctx, replicationsKey(projectID), replications)
}

func (r *implCacheRepository) DeleteReplications(ctx context.Context, projectID string) error {
	if err := r.redis.Delete(ctx, replicationsKey(projectID)); err != nil {
		r.l.Errorf(ctx, "lookup.repository.redis.DeleteReplications: Failed to delete cache: %v", err)
		return err
	}
	return nil
}

// tokenKey keys by digest so raw tokens never reach Redis.
func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%s:token:%s", keyPrefix, hex.EncodeToString(sum[:]))
}

type cachedTokenScope struct {
	ProjectID string `json:"project_id"`
	UserID    string `json:"user_id"`
}

func (r *implCacheRepository) GetTokenScope(ctx context.Context, token string) (sgsclient.TokenScope, error) {
	var ts cachedTokenScope
	if err := r.get(ctx, tokenKey(token), &ts); err != nil {
		return sgsclient.TokenScope{}, err
	}
	return sgsclient.TokenScope{ProjectID: ts.ProjectID, UserID: ts.UserID}, nil
}

func (r *implCacheRepository) SaveTokenScope(ctx context.Context, token string, ts sgsclient.TokenScope) error {
	return r.save(ctx, tokenKey(token), cachedTokenScope{ProjectID: ts.ProjectID, UserID: ts.UserID})
}

func (r *implCacheRepository) get(ctx context.Context, key string, out any) error {
	data, err := r.redis.Get(ctx, key)
	if errors.Is(err, redis.ErrNil) {
		return repo.ErrCacheMiss
	}
	if err != nil {
		r.l.Errorf(ctx, "lookup.repository.redis.get: Failed to get %s from cache: %v", key, err)
		return err
	}

	if err := json.Unmarshal([]byte(data), out); err != nil {
		r.l.Warnf(ctx, "lookup.repository.redis.get: Corrupt cache entry %s: %v", key, err)
		return repo.ErrCacheMiss
	}
	return nil
}

func (r *implCacheRepository) save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		r.l.Errorf(ctx, "lookup.repository.redis.save: Failed to marshal %s: %v", key, err)
		return err
	}

	if err := r.redis.Set(ctx, key, string(data), r.ttl); err != nil {
		r.l.Errorf(ctx, "lookup.repository.redis.save: Failed to set %s in cache: %v", key, err)
		return err
	}
	return nil
}

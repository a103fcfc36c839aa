package redis

import (
	"time"

	repo "sg-console-srv/internal/lookup/repository"
	"sg-console-srv/pkg/log"
	"sg-console-srv/pkg/redis"
)

const defaultTTL = 30 * time.Second

type implCacheRepository struct {
	redis redis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New creates a new CacheRepository backed by Redis. Entries expire after ttl.
func New(redis redis.IRedis, l log.Logger, ttl time.Duration) repo.CacheRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &implCacheRepository{
		redis: redis,
		l:     l,
		ttl:   ttl,
	}
}

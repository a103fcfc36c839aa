package usecase

import (
	"sg-console-srv/internal/lookup"
	"sg-console-srv/internal/lookup/repository"
	"sg-console-srv/pkg/log"
	"sg-console-srv/pkg/sgsclient"
)

type implUseCase struct {
	l     log.Logger
	sgs   sgsclient.ISGS
	cache repository.CacheRepository
}

// New creates a new lookup UseCase. cache may be nil, in which case every lookup hits the gateway.
func New(l log.Logger, sgs sgsclient.ISGS, cache repository.CacheRepository) lookup.UseCase {
	return &implUseCase{
		l:     l,
		sgs:   sgs,
		cache: cache,
	}
}

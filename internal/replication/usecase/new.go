package usecase

import (
	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/lookup"
	"sg-console-srv/internal/replication"
	"sg-console-srv/pkg/log"
	"sg-console-srv/pkg/sgsclient"
)

type implUseCase struct {
	l        log.Logger
	sgs      sgsclient.ISGS
	lookup   lookup.UseCase
	recorder actionlog.Recorder
}

// New creates a new replication UseCase
func New(l log.Logger, sgs sgsclient.ISGS, lookupUC lookup.UseCase, recorder actionlog.Recorder) replication.UseCase {
	return &implUseCase{
		l:        l,
		sgs:      sgs,
		lookup:   lookupUC,
		recorder: recorder,
	}
}

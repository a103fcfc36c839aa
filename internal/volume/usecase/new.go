package usecase

import (
	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/lookup"
	"sg-console-srv/internal/volume"
	"sg-console-srv/pkg/log"
	"sg-console-srv/pkg/sgsclient"
)

type implUseCase struct {
	l        log.Logger
	sgs      sgsclient.ISGS
	lookup   lookup.UseCase
	recorder actionlog.Recorder
}

// New creates a new volume UseCase
func New(l log.Logger, sgs sgsclient.ISGS, lookupUC lookup.UseCase, recorder actionlog.Recorder) volume.UseCase {
	return &implUseCase{
		l:        l,
		sgs:      sgs,
		lookup:   lookupUC,
		recorder: recorder,
	}
}

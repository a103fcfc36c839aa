package http

import (
	"sg-console-srv/internal/middleware"
	"sg-console-srv/internal/volume"
	"sg-console-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l        log.Logger
	uc       volume.UseCase
	pageSize int
}

func New(l log.Logger, uc volume.UseCase, pageSize int) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		pageSize: pageSize,
	}
}

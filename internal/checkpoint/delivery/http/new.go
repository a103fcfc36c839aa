package http

import (
	"sg-console-srv/internal/checkpoint"
	"sg-console-srv/internal/middleware"
	"sg-console-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l        log.Logger
	uc       checkpoint.UseCase
	pageSize int
}

func New(l log.Logger, uc checkpoint.UseCase, pageSize int) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		pageSize: pageSize,
	}
}

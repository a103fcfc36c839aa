package http

import (
	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/middleware"
	"sg-console-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l        log.Logger
	uc       actionlog.UseCase
	pageSize int
}

// New creates the action log handler. pageSize is used when the request has none.
func New(l log.Logger, uc actionlog.UseCase, pageSize int) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		pageSize: pageSize,
	}
}

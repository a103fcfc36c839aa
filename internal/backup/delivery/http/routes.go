package http

import (
	"sg-console-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/backups", h.List)
		api.GET("/backups/:id", h.Get)
		api.DELETE("/backups/:id", h.Delete)
		api.POST("/backups/:id/restore", h.Restore)
		api.POST("/volumes/:id/backups", h.Create)
	}
}

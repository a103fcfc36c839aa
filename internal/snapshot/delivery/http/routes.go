package http

import (
	"sg-console-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/snapshots", h.List)
		api.GET("/snapshots/:id", h.Get)
		api.PUT("/snapshots/:id", h.Update)
		api.DELETE("/snapshots/:id", h.Delete)
		api.POST("/volumes/:id/snapshots", h.Create)
	}
}

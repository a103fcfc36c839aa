package http

import (
	"sg-console-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/action-logs", h.List)
		api.POST("/action-logs/export", h.Export)
	}
}

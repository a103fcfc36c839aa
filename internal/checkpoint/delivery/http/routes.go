package http

import (
	"sg-console-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/checkpoints", h.List)
		api.GET("/checkpoints/:id", h.Get)
		api.PUT("/checkpoints/:id", h.Update)
		api.DELETE("/checkpoints/:id", h.Delete)
		api.POST("/checkpoints/:id/rollback", h.Rollback)
		api.POST("/replications/:id/checkpoints", h.Create)
	}
}

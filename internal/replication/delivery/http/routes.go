package http

import (
	"sg-console-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/replications")
	api.Use(mw.Auth())
	{
		api.GET("", h.List)
		api.POST("", h.Create)
		api.GET("/:id", h.Get)
		api.PUT("/:id", h.Update)
		api.DELETE("/:id", h.Delete)
		api.POST("/:id/enable", h.Enable)
		api.POST("/:id/disable", h.Disable)
		api.POST("/:id/failover", h.Failover)
		api.POST("/:id/reverse", h.Reverse)
	}
}

package httpserver

import (
	"context"
	"fmt"

	"sg-console-srv/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type domainSetup func(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error

func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	if err := srv.setupCoreDomains(ctx); err != nil {
		return fmt.Errorf("failed to setup core domains: %w", err)
	}

	mw := middleware.New(srv.l, srv.lookupUC)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	r := srv.gin.Group("")
	for _, setup := range []domainSetup{
		srv.setupVolumeDomain,
		srv.setupSnapshotDomain,
		srv.setupBackupDomain,
		srv.setupReplicationDomain,
		srv.setupCheckpointDomain,
		srv.setupActionLogDomain,
	} {
		if err := setup(ctx, r, mw); err != nil {
			return err
		}
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(mw.RequestID())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

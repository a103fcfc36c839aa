package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	backupHTTP "sg-console-srv/internal/backup/delivery/http"
	backupUsecase "sg-console-srv/internal/backup/usecase"
	"sg-console-srv/internal/middleware"
	snapshotHTTP "sg-console-srv/internal/snapshot/delivery/http"
	snapshotUsecase "sg-console-srv/internal/snapshot/usecase"
	volumeHTTP "sg-console-srv/internal/volume/delivery/http"
	volumeUsecase "sg-console-srv/internal/volume/usecase"
)

func (srv *HTTPServer) setupVolumeDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := volumeUsecase.New(srv.l, srv.sgs, srv.lookupUC, srv.actionLogUC)

	handler := volumeHTTP.New(srv.l, uc, srv.config.SGS.PageSize)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Volume domain registered")
	return nil
}

func (srv *HTTPServer) setupSnapshotDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := snapshotUsecase.New(srv.l, srv.sgs, srv.lookupUC, srv.actionLogUC)

	handler := snapshotHTTP.New(srv.l, uc, srv.config.SGS.PageSize)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Snapshot domain registered")
	return nil
}

func (srv *HTTPServer) setupBackupDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := backupUsecase.New(srv.l, srv.sgs, srv.lookupUC, srv.actionLogUC)

	handler := backupHTTP.New(srv.l, uc, srv.config.SGS.PageSize)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Backup domain registered")
	return nil
}

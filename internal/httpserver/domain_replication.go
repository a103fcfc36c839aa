package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	checkpointHTTP "sg-console-srv/internal/checkpoint/delivery/http"
	checkpointUsecase "sg-console-srv/internal/checkpoint/usecase"
	"sg-console-srv/internal/middleware"
	replicationHTTP "sg-console-srv/internal/replication/delivery/http"
	replicationUsecase "sg-console-srv/internal/replication/usecase"
)

func (srv *HTTPServer) setupReplicationDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := replicationUsecase.New(srv.l, srv.sgs, srv.lookupUC, srv.actionLogUC)

	handler := replicationHTTP.New(srv.l, uc, srv.config.SGS.PageSize)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Replication domain registered")
	return nil
}

func (srv *HTTPServer) setupCheckpointDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := checkpointUsecase.New(srv.l, srv.sgs, srv.lookupUC, srv.actionLogUC)

	handler := checkpointHTTP.New(srv.l, uc, srv.config.SGS.PageSize)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Checkpoint domain registered")
	return nil
}

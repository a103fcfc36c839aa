package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	actionlogHTTP "sg-console-srv/internal/actionlog/delivery/http"
	"sg-console-srv/internal/middleware"
)

func (srv *HTTPServer) setupActionLogDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	handler := actionlogHTTP.New(srv.l, srv.actionLogUC, srv.config.SGS.PageSize)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "ActionLog domain registered")
	return nil
}

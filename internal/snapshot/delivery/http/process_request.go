package http

import (
	"sg-console-srv/internal/model"
	pkgErrors "sg-console-srv/pkg/errors"
	"sg-console-srv/pkg/paginator"
	"sg-console-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (listReq, model.Scope, error) {
	req := listReq{
		Page: paginator.NewRequest(
			c.Query(paginator.PrevMarkerParam),
			c.Query(paginator.MarkerParam),
			c.Query(paginator.PageSizeParam),
			h.pageSize,
		),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processIDRequest(c *gin.Context) (string, model.Scope, error) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	return c.Param("id"), sc, nil
}

func (h *handler) processCreateRequest(c *gin.Context) (createReq, model.Scope, error) {
	var req createReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "snapshot.delivery.http.processCreateRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, pkgErrors.ErrBadRequest
	}
	req.VolumeID = c.Param("id")

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processUpdateRequest(c *gin.Context) (updateReq, model.Scope, error) {
	var req updateReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "snapshot.delivery.http.processUpdateRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, pkgErrors.ErrBadRequest
	}
	req.ID = c.Param("id")

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

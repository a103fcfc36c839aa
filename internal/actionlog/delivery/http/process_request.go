package http

import (
	"sg-console-srv/internal/model"
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
		ResourceType: c.Query("resource_type"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	if sc.ProjectID == "" {
		return listReq{}, model.Scope{}, errNoProject
	}
	return req, sc, nil
}

func (h *handler) processExportRequest(c *gin.Context) (exportReq, model.Scope, error) {
	req := exportReq{ResourceType: c.Query("resource_type")}

	sc := scope.GetScopeFromContext(c.Request.Context())
	if sc.ProjectID == "" {
		return exportReq{}, model.Scope{}, errNoProject
	}
	return req, sc, nil
}

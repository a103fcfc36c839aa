package http

import (
	"sg-console-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List action logs
// @Description Page through the console actions recorded for the caller's project, newest first
// @Tags ActionLog
// @Produce json
// @Param marker query string false "Next page marker"
// @Param prev_marker query string false "Previous page marker"
// @Param page_size query int false "Page size"
// @Param resource_type query string false "Resource type filter"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/action-logs [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "actionlog.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "actionlog.delivery.http.List: usecase List failed: %v", err)
		if isDegraded(err) {
			response.Degraded(c, errRetrievalFailed, h.newListResp(o))
			return
		}
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Export action logs
// @Description Write the caller's project action logs, newest first, to a CSV file and return a download link
// @Tags ActionLog
// @Produce json
// @Param resource_type query string false "Resource type filter"
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/action-logs/export [post]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processExportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "actionlog.delivery.http.Export: processExportRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.Export(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "actionlog.delivery.http.Export: usecase Export failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExportResp(o))
}

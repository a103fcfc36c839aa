package http

import (
	"errors"

	"sg-console-srv/pkg/paginator"
	"sg-console-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List replications
// @Description Page through volume replications, newest first, with master and slave volume names
// @Tags Replication
// @Produce json
// @Param marker query string false "Next page marker"
// @Param prev_marker query string false "Previous page marker"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Resp
// @Router /api/v1/replications [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "replication.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "replication.delivery.http.List: usecase List failed: %v", err)
		if errors.Is(err, paginator.ErrRetrievalFailed) {
			response.Degraded(c, errRetrievalFailed, h.newListResp(o))
			return
		}
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Get replication
// @Tags Replication
// @Produce json
// @Param id path string true "Replication ID"
// @Success 200 {object} replicationResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/replications/{id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "replication.delivery.http.Get: processIDRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.Get(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "replication.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGetResp(o))
}

// @Summary Create replication
// @Description Pair a master and a slave volume from different availability zones
// @Tags Replication
// @Accept json
// @Produce json
// @Param body body createReq true "Replication"
// @Success 200 {object} replicationResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/replications [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "replication.delivery.http.Create: processCreateRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	r, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "replication.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newReplicationResp(r, nil, nil))
}

// @Summary Update replication
// @Tags Replication
// @Accept json
// @Produce json
// @Param id path string true "Replication ID"
// @Param body body updateReq true "Name and description"
// @Success 200 {object} replicationResp
// @Router /api/v1/replications/{id} [put]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "replication.delivery.http.Update: processUpdateRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	r, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "replication.delivery.http.Update: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newReplicationResp(r, nil, nil))
}

// @Summary Delete replication
// @Tags Replication
// @Produce json
// @Param id path string true "Replication ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/replications/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "replication.delivery.http.Delete: processIDRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "replication.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// @Summary Enable replication
// @Tags Replication
// @Produce json
// @Param id path string true "Replication ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/replications/{id}/enable [post]
func (h *handler) Enable(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "replication.delivery.http.Enable: processIDRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Enable(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "replication.delivery.http.Enable: usecase Enable failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// @Summary Disable replication
// @Tags Replication
// @Produce json
// @Param id path string true "Replication ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/replications/{id}/disable [post]
func (h *handler) Disable(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "replication.delivery.http.Disable: processIDRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Disable(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "replication.delivery.http.Disable: usecase Disable failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// @Summary Fail over to the slave volume
// @Tags Replication
// @Produce json
// @Param id path string true "Replication ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/replications/{id}/failover [post]
func (h *handler) Failover(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "replication.delivery.http.Failover: processIDRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Failover(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "replication.delivery.http.Failover: usecase Failover failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// @Summary Reverse master and slave roles
// @Tags Replication
// @Produce json
// @Param id path string true "Replication ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/replications/{id}/reverse [post]
func (h *handler) Reverse(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "replication.delivery.http.Reverse: processIDRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Reverse(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "replication.delivery.http.Reverse: usecase Reverse failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

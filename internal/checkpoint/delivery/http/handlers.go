package http

import (
	"errors"

	"sg-console-srv/pkg/paginator"
	"sg-console-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List checkpoints
// @Description Page through replication checkpoints, newest first, with their replication names
// @Tags Checkpoint
// @Produce json
// @Param marker query string false "Next page marker"
// @Param prev_marker query string false "Previous page marker"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Resp
// @Router /api/v1/checkpoints [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "checkpoint.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "checkpoint.delivery.http.List: usecase List failed: %v", err)
		if errors.Is(err, paginator.ErrRetrievalFailed) {
			response.Degraded(c, errRetrievalFailed, h.newListResp(o))
			return
		}
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Get checkpoint
// @Tags Checkpoint
// @Produce json
// @Param id path string true "Checkpoint ID"
// @Success 200 {object} checkpointResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/checkpoints/{id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "checkpoint.delivery.http.Get: processIDRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.Get(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "checkpoint.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGetResp(o))
}

// @Summary Create checkpoint
// @Tags Checkpoint
// @Accept json
// @Produce json
// @Param id path string true "Replication ID"
// @Param body body createReq true "Checkpoint"
// @Success 200 {object} checkpointResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/replications/{id}/checkpoints [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "checkpoint.delivery.http.Create: processCreateRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	cp, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "checkpoint.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCheckpointResp(cp, ""))
}

// @Summary Update checkpoint
// @Tags Checkpoint
// @Accept json
// @Produce json
// @Param id path string true "Checkpoint ID"
// @Param body body updateReq true "Name and description"
// @Success 200 {object} checkpointResp
// @Router /api/v1/checkpoints/{id} [put]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "checkpoint.delivery.http.Update: processUpdateRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	cp, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "checkpoint.delivery.http.Update: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCheckpointResp(cp, ""))
}

// @Summary Delete checkpoint
// @Tags Checkpoint
// @Produce json
// @Param id path string true "Checkpoint ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/checkpoints/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "checkpoint.delivery.http.Delete: processIDRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "checkpoint.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// @Summary Roll the replication back to the checkpoint
// @Tags Checkpoint
// @Produce json
// @Param id path string true "Checkpoint ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/checkpoints/{id}/rollback [post]
func (h *handler) Rollback(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "checkpoint.delivery.http.Rollback: processIDRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Rollback(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "checkpoint.delivery.http.Rollback: usecase Rollback failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

package http

import (
	"errors"

	"sg-console-srv/pkg/paginator"
	"sg-console-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List snapshots
// @Description Page through volume snapshots, newest first, with their volume names
// @Tags Snapshot
// @Produce json
// @Param marker query string false "Next page marker"
// @Param prev_marker query string false "Previous page marker"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Resp
// @Router /api/v1/snapshots [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "snapshot.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "snapshot.delivery.http.List: usecase List failed: %v", err)
		if errors.Is(err, paginator.ErrRetrievalFailed) {
			response.Degraded(c, errRetrievalFailed, h.newListResp(o))
			return
		}
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Get snapshot
// @Tags Snapshot
// @Produce json
// @Param id path string true "Snapshot ID"
// @Success 200 {object} snapshotResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/snapshots/{id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "snapshot.delivery.http.Get: processIDRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.Get(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "snapshot.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGetResp(o))
}

// @Summary Create snapshot
// @Tags Snapshot
// @Accept json
// @Produce json
// @Param id path string true "Volume ID"
// @Param body body createReq true "Snapshot"
// @Success 200 {object} snapshotResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/volumes/{id}/snapshots [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "snapshot.delivery.http.Create: processCreateRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	s, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "snapshot.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSnapshotResp(s, ""))
}

// @Summary Update snapshot
// @Tags Snapshot
// @Accept json
// @Produce json
// @Param id path string true "Snapshot ID"
// @Param body body updateReq true "Name and description"
// @Success 200 {object} snapshotResp
// @Router /api/v1/snapshots/{id} [put]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "snapshot.delivery.http.Update: processUpdateRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	s, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "snapshot.delivery.http.Update: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSnapshotResp(s, ""))
}

// @Summary Delete snapshot
// @Tags Snapshot
// @Produce json
// @Param id path string true "Snapshot ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/snapshots/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "snapshot.delivery.http.Delete: processIDRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "snapshot.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

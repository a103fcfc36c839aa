package http

import (
	"errors"

	"sg-console-srv/pkg/paginator"
	"sg-console-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List volumes
// @Description Page through the storage-gateway volumes, newest first. A gateway failure still returns 200 with an empty page.
// @Tags Volume
// @Produce json
// @Param marker query string false "Next page marker"
// @Param prev_marker query string false "Previous page marker"
// @Param page_size query int false "Page size"
// @Param status query string false "Status filter"
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/volumes [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "volume.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "volume.delivery.http.List: usecase List failed: %v", err)
		if errors.Is(err, paginator.ErrRetrievalFailed) {
			response.Degraded(c, errRetrievalFailed, h.newListResp(o))
			return
		}
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Get volume
// @Tags Volume
// @Produce json
// @Param id path string true "Volume ID"
// @Success 200 {object} volumeResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/volumes/{id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "volume.delivery.http.Get: processIDRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	v, err := h.uc.Get(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "volume.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newVolumeResp(v))
}

// @Summary Create volume
// @Description Create an empty volume or one from a snapshot or a replication checkpoint
// @Tags Volume
// @Accept json
// @Produce json
// @Param body body createReq true "Volume"
// @Success 200 {object} volumeResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/volumes [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "volume.delivery.http.Create: processCreateRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	v, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "volume.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newVolumeResp(v))
}

// @Summary Update volume
// @Tags Volume
// @Accept json
// @Produce json
// @Param id path string true "Volume ID"
// @Param body body updateReq true "Name and description"
// @Success 200 {object} volumeResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/volumes/{id} [put]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "volume.delivery.http.Update: processUpdateRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	v, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "volume.delivery.http.Update: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newVolumeResp(v))
}

// @Summary Delete volume
// @Tags Volume
// @Produce json
// @Param id path string true "Volume ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/volumes/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "volume.delivery.http.Delete: processIDRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "volume.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// @Summary Enable volume
// @Description Bring an available block-storage volume under gateway management
// @Tags Volume
// @Accept json
// @Produce json
// @Param id path string true "Volume ID"
// @Param body body updateReq false "Name and description"
// @Success 200 {object} response.Resp
// @Router /api/v1/volumes/{id}/enable [post]
func (h *handler) Enable(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processEnableRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "volume.delivery.http.Enable: processEnableRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Enable(ctx, sc, req.toEnableInput()); err != nil {
		h.l.Errorf(ctx, "volume.delivery.http.Enable: usecase Enable failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// @Summary Disable volume
// @Tags Volume
// @Produce json
// @Param id path string true "Volume ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/volumes/{id}/disable [post]
func (h *handler) Disable(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "volume.delivery.http.Disable: processIDRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Disable(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "volume.delivery.http.Disable: usecase Disable failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// @Summary Attach volume
// @Tags Volume
// @Accept json
// @Produce json
// @Param id path string true "Volume ID"
// @Param body body attachReq true "Instance"
// @Success 200 {object} response.Resp
// @Router /api/v1/volumes/{id}/attach [post]
func (h *handler) Attach(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processAttachRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "volume.delivery.http.Attach: processAttachRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Attach(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "volume.delivery.http.Attach: usecase Attach failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// @Summary Detach volume
// @Tags Volume
// @Accept json
// @Produce json
// @Param id path string true "Volume ID"
// @Param body body detachReq false "Attachment"
// @Success 200 {object} response.Resp
// @Router /api/v1/volumes/{id}/detach [post]
func (h *handler) Detach(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDetachRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "volume.delivery.http.Detach: processDetachRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Detach(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "volume.delivery.http.Detach: usecase Detach failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

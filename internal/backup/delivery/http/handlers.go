package http

import (
	"errors"

	"sg-console-srv/pkg/paginator"
	"sg-console-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List backups
// @Description Page through volume backups, newest first, with their volume names
// @Tags Backup
// @Produce json
// @Param marker query string false "Next page marker"
// @Param prev_marker query string false "Previous page marker"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Resp
// @Router /api/v1/backups [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "backup.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "backup.delivery.http.List: usecase List failed: %v", err)
		if errors.Is(err, paginator.ErrRetrievalFailed) {
			response.Degraded(c, errRetrievalFailed, h.newListResp(o))
			return
		}
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Get backup
// @Tags Backup
// @Produce json
// @Param id path string true "Backup ID"
// @Success 200 {object} backupResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/backups/{id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "backup.delivery.http.Get: processIDRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.Get(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "backup.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGetResp(o))
}

// @Summary Create backup
// @Tags Backup
// @Accept json
// @Produce json
// @Param id path string true "Volume ID"
// @Param body body createReq true "Backup"
// @Success 200 {object} backupResp
// @Router /api/v1/volumes/{id}/backups [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "backup.delivery.http.Create: processCreateRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	b, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "backup.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBackupResp(b, ""))
}

// @Summary Delete backup
// @Tags Backup
// @Produce json
// @Param id path string true "Backup ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/backups/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "backup.delivery.http.Delete: processIDRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "backup.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// @Summary Restore backup
// @Tags Backup
// @Accept json
// @Produce json
// @Param id path string true "Backup ID"
// @Param body body restoreReq true "Target volume"
// @Success 200 {object} response.Resp
// @Router /api/v1/backups/{id}/restore [post]
func (h *handler) Restore(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processRestoreRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "backup.delivery.http.Restore: processRestoreRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Restore(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "backup.delivery.http.Restore: usecase Restore failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

package http

import (
	"errors"
	"net/http"

	"sg-console-srv/internal/backup"
	pkgErrors "sg-console-srv/pkg/errors"
	"sg-console-srv/pkg/sgsclient"
)

var (
	errBackupNotFound     = pkgErrors.NewHTTPError(http.StatusNotFound, "Backup not found")
	errVolumeNotFound     = pkgErrors.NewHTTPError(http.StatusNotFound, "Volume not found")
	errNameRequired       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Backup name is required")
	errTargetVolumeNeeded = pkgErrors.NewHTTPError(http.StatusBadRequest, "Select a volume to restore to")
	errGatewayFailed      = pkgErrors.NewHTTPError(http.StatusBadGateway, "Unable to complete the backup request.")
	errRetrievalFailed    = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Unable to retrieve volume backups.")
)

func (h *handler) mapError(err error) error {
	var apiErr *sgsclient.APIError

	switch {
	case errors.Is(err, backup.ErrBackupNotFound):
		return errBackupNotFound
	case errors.Is(err, backup.ErrVolumeNotFound):
		return errVolumeNotFound
	case errors.Is(err, backup.ErrNameRequired):
		return errNameRequired
	case errors.Is(err, backup.ErrTargetVolumeNeeded):
		return errTargetVolumeNeeded
	case errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError:
		return pkgErrors.NewHTTPError(apiErr.StatusCode, apiErr.Message)
	case errors.Is(err, backup.ErrGatewayFailed):
		return errGatewayFailed
	default:
		panic(err)
	}
}

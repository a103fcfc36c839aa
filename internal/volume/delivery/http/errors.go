package http

import (
	"errors"
	"net/http"

	"sg-console-srv/internal/volume"
	pkgErrors "sg-console-srv/pkg/errors"
	"sg-console-srv/pkg/sgsclient"
)

var (
	errVolumeNotFound           = pkgErrors.NewHTTPError(http.StatusNotFound, "Volume not found")
	errInvalidSize              = pkgErrors.NewHTTPError(http.StatusBadRequest, "Volume size must be at least 1GiB")
	errInvalidSourceType        = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid volume source type")
	errSnapshotSourceRequired   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Snapshot source must be specified")
	errCheckpointSourceRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "Checkpoint source must be specified")
	errSourceNotFound           = pkgErrors.NewHTTPError(http.StatusBadRequest, "Unable to load the specified source.")
	errInstanceRequired         = pkgErrors.NewHTTPError(http.StatusBadRequest, "Instance is required")
	errGatewayFailed            = pkgErrors.NewHTTPError(http.StatusBadGateway, "Unable to complete the volume request.")
	errRetrievalFailed          = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Unable to retrieve volume list.")
)

func (h *handler) mapError(err error) error {
	var sizeErr *volume.SizeError
	var apiErr *sgsclient.APIError

	switch {
	case errors.As(err, &sizeErr):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, sizeErr.Error())
	case errors.Is(err, volume.ErrVolumeNotFound):
		return errVolumeNotFound
	case errors.Is(err, volume.ErrInvalidSize):
		return errInvalidSize
	case errors.Is(err, volume.ErrInvalidSourceType):
		return errInvalidSourceType
	case errors.Is(err, volume.ErrSnapshotSourceRequired):
		return errSnapshotSourceRequired
	case errors.Is(err, volume.ErrCheckpointSourceRequired):
		return errCheckpointSourceRequired
	case errors.Is(err, volume.ErrSourceNotFound):
		return errSourceNotFound
	case errors.Is(err, volume.ErrInstanceRequired):
		return errInstanceRequired
	case errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError:
		return pkgErrors.NewHTTPError(apiErr.StatusCode, apiErr.Message)
	case errors.Is(err, volume.ErrGatewayFailed):
		return errGatewayFailed
	default:
		panic(err)
	}
}

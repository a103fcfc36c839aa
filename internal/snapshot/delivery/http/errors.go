package http

import (
	"errors"
	"net/http"

	"sg-console-srv/internal/snapshot"
	pkgErrors "sg-console-srv/pkg/errors"
	"sg-console-srv/pkg/sgsclient"
)

var (
	errSnapshotNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "Snapshot not found")
	errVolumeNotFound   = pkgErrors.NewHTTPError(http.StatusNotFound, "Volume not found")
	errNameRequired     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Snapshot name is required")
	errGatewayFailed    = pkgErrors.NewHTTPError(http.StatusBadGateway, "Unable to complete the snapshot request.")
	errRetrievalFailed  = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Unable to retrieve volume snapshots.")
)

func (h *handler) mapError(err error) error {
	var apiErr *sgsclient.APIError

	switch {
	case errors.Is(err, snapshot.ErrSnapshotNotFound):
		return errSnapshotNotFound
	case errors.Is(err, snapshot.ErrVolumeNotFound):
		return errVolumeNotFound
	case errors.Is(err, snapshot.ErrNameRequired):
		return errNameRequired
	case errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError:
		return pkgErrors.NewHTTPError(apiErr.StatusCode, apiErr.Message)
	case errors.Is(err, snapshot.ErrGatewayFailed):
		return errGatewayFailed
	default:
		panic(err)
	}
}

package http

import (
	"errors"
	"net/http"

	"sg-console-srv/internal/checkpoint"
	pkgErrors "sg-console-srv/pkg/errors"
	"sg-console-srv/pkg/sgsclient"
)

var (
	errCheckpointNotFound  = pkgErrors.NewHTTPError(http.StatusNotFound, "Checkpoint not found")
	errReplicationNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "Replication not found")
	errNameRequired        = pkgErrors.NewHTTPError(http.StatusBadRequest, "Checkpoint name is required")
	errGatewayFailed       = pkgErrors.NewHTTPError(http.StatusBadGateway, "Unable to complete the checkpoint request.")
	errRetrievalFailed     = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Unable to retrieve checkpoints.")
)

func (h *handler) mapError(err error) error {
	var apiErr *sgsclient.APIError

	switch {
	case errors.Is(err, checkpoint.ErrCheckpointNotFound):
		return errCheckpointNotFound
	case errors.Is(err, checkpoint.ErrReplicationNotFound):
		return errReplicationNotFound
	case errors.Is(err, checkpoint.ErrNameRequired):
		return errNameRequired
	case errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError:
		return pkgErrors.NewHTTPError(apiErr.StatusCode, apiErr.Message)
	case errors.Is(err, checkpoint.ErrGatewayFailed):
		return errGatewayFailed
	default:
		panic(err)
	}
}

package http

import (
	"errors"
	"net/http"

	"sg-console-srv/internal/replication"
	pkgErrors "sg-console-srv/pkg/errors"
	"sg-console-srv/pkg/sgsclient"
)

var (
	errReplicationNotFound  = pkgErrors.NewHTTPError(http.StatusNotFound, "Replication not found")
	errVolumeNotFound       = pkgErrors.NewHTTPError(http.StatusNotFound, "Volume not found")
	errMasterVolumeRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "Replication master_volume must be specified")
	errSlaveVolumeRequired  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Replication slave_volume must be specified")
	errSameVolume           = pkgErrors.NewHTTPError(http.StatusBadRequest, "The slave volume and master volume can not be the same")
	errSameAZ               = pkgErrors.NewHTTPError(http.StatusBadRequest, "The slave volume and master volume can not be the same availability_zone")
	errGatewayFailed        = pkgErrors.NewHTTPError(http.StatusBadGateway, "Unable to complete the replication request.")
	errRetrievalFailed      = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Unable to retrieve volume replications.")
)

func (h *handler) mapError(err error) error {
	var apiErr *sgsclient.APIError

	switch {
	case errors.Is(err, replication.ErrReplicationNotFound):
		return errReplicationNotFound
	case errors.Is(err, replication.ErrVolumeNotFound):
		return errVolumeNotFound
	case errors.Is(err, replication.ErrMasterVolumeRequired):
		return errMasterVolumeRequired
	case errors.Is(err, replication.ErrSlaveVolumeRequired):
		return errSlaveVolumeRequired
	case errors.Is(err, replication.ErrSameVolume):
		return errSameVolume
	case errors.Is(err, replication.ErrSameAvailabilityZone):
		return errSameAZ
	case errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError:
		return pkgErrors.NewHTTPError(apiErr.StatusCode, apiErr.Message)
	case errors.Is(err, replication.ErrGatewayFailed):
		return errGatewayFailed
	default:
		panic(err)
	}
}

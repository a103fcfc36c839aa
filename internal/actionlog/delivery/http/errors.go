package http

import (
	"errors"
	"net/http"

	"sg-console-srv/internal/actionlog"
	pkgErrors "sg-console-srv/pkg/errors"
	"sg-console-srv/pkg/paginator"
)

var (
	errInvalidMarker   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid marker")
	errNoProject       = pkgErrors.NewHTTPError(http.StatusForbidden, "Action logs require a project scoped token.")
	errRetrievalFailed = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Unable to retrieve action logs.")
	errExportDisabled  = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Action log export is not available.")
	errExportFailed    = pkgErrors.NewHTTPError(http.StatusBadGateway, "Unable to export action logs.")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, actionlog.ErrProjectRequired):
		return errNoProject
	case errors.Is(err, actionlog.ErrMarkerNotFound):
		return errInvalidMarker
	case errors.Is(err, paginator.ErrRetrievalFailed):
		return errRetrievalFailed
	case errors.Is(err, actionlog.ErrExportUnavailable):
		return errExportDisabled
	case errors.Is(err, actionlog.ErrExportFailed):
		return errExportFailed
	default:
		panic(err)
	}
}

// isDegraded reports whether the list should still render, empty, with an inline message.
func isDegraded(err error) bool {
	return errors.Is(err, paginator.ErrRetrievalFailed) && !errors.Is(err, actionlog.ErrMarkerNotFound)
}

package actionlog

import "errors"

var (
	ErrInvalidEvent   = errors.New("invalid action event")
	ErrMarkerNotFound  = errors.New("marker not found")
	ErrProjectRequired = errors.New("action logs require a project scope")

	ErrExportUnavailable = errors.New("action log export is not configured")
	ErrExportFailed      = errors.New("action log export failed")
)

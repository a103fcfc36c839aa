package repository

import "errors"

var (
	ErrMarkerNotFound  = errors.New("marker not found")
	ErrProjectRequired = errors.New("project id is required")
	ErrFailedToInsert  = errors.New("failed to insert")
	ErrFailedToList    = errors.New("failed to list")
	ErrFailedToMigrate = errors.New("failed to migrate")
)

package repository

import "time"

type CreateActionLogOptions struct {
	ID           string
	Action       string
	ResourceType string
	ResourceID   string
	ProjectID    string
	UserID       string
	CreatedAt    time.Time
}

// ListActionLogsOptions pages over (created_at, id). Sort is "created_at:asc" or
// "created_at:desc"; rows come strictly after Marker in that order.
type ListActionLogsOptions struct {
	ProjectID     string
	ResourceTypes []string
	Marker        string
	Sort          string
	Limit         int
}

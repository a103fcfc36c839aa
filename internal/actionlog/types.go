package actionlog

import (
	"time"

	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/paginator"
)

const (
	ActionCreate   = "create"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionEnable   = "enable"
	ActionDisable  = "disable"
	ActionAttach   = "attach"
	ActionDetach   = "detach"
	ActionRestore  = "restore"
	ActionFailover = "failover"
	ActionReverse  = "reverse"
	ActionRollback = "rollback"
)

type RecordInput struct {
	Action       string
	ResourceType string
	ResourceID   string
}

// ActionEvent is one console action as published and stored.
type ActionEvent struct {
	ID           string
	Action       string
	ResourceType string
	ResourceID   string
	ProjectID    string
	UserID       string
	CreatedAt    time.Time
}

type ListInput struct {
	Page         paginator.Request
	ResourceType string
}

type ListOutput struct {
	Page paginator.Page[model.ActionLog]
}

type ExportInput struct {
	ResourceType string
}

type ExportOutput struct {
	URL       string
	ExpiresAt time.Time
	FileName  string
	Rows      int
}

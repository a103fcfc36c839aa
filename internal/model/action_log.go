package model

import "time"

// Resource types recorded in the action log.
const (
	ResourceVolume      = "volume"
	ResourceSnapshot    = "snapshot"
	ResourceBackup      = "backup"
	ResourceReplication = "replication"
	ResourceCheckpoint  = "checkpoint"
)

// ActionLog is one recorded console action.
type ActionLog struct {
	ID           string
	Action       string // create | update | delete | enable | disable | attach | ...
	ResourceType string
	ResourceID   string
	ProjectID    string
	UserID       string
	CreatedAt    time.Time
}

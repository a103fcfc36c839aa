package model

import (
	"time"

	"sg-console-srv/pkg/sgsclient"
)

// Checkpoint is a consistency point of a replication.
type Checkpoint struct {
	ID            string
	Name          string
	Description   string
	Status        string
	ReplicationID string
	CreatedAt     time.Time
}

// NewCheckpointFromSGS converts a gateway checkpoint to model Checkpoint.
func NewCheckpointFromSGS(c *sgsclient.Checkpoint) *Checkpoint {
	if c == nil {
		return nil
	}
	return &Checkpoint{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		Status:        c.Status,
		ReplicationID: c.ReplicationID,
		CreatedAt:     parseSGSTime(c.CreatedAt),
	}
}

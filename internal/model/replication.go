package model

import (
	"time"

	"sg-console-srv/pkg/sgsclient"
)

// Replication pairs a master and a slave volume.
type Replication struct {
	ID           string
	Name         string
	Description  string
	Status       string
	MasterVolume string
	SlaveVolume  string
	CreatedAt    time.Time
}

// DisplayName falls back to the id when the replication is unnamed.
func (r Replication) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// NewReplicationFromSGS converts a gateway replication to model Replication.
func NewReplicationFromSGS(r *sgsclient.Replication) *Replication {
	if r == nil {
		return nil
	}
	return &Replication{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Status:       r.Status,
		MasterVolume: r.MasterVolume,
		SlaveVolume:  r.SlaveVolume,
		CreatedAt:    parseSGSTime(r.CreatedAt),
	}
}

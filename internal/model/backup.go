package model

import (
	"time"

	"sg-console-srv/pkg/sgsclient"
)

// Backup represents a volume backup.
type Backup struct {
	ID               string
	Name             string
	Description      string
	Size             int
	Status           string
	VolumeID         string
	AvailabilityZone string
	CreatedAt        time.Time
}

// NewBackupFromSGS converts a gateway backup to model Backup.
func NewBackupFromSGS(b *sgsclient.Backup) *Backup {
	if b == nil {
		return nil
	}
	return &Backup{
		ID:               b.ID,
		Name:             b.Name,
		Description:      b.Description,
		Size:             b.Size,
		Status:           b.Status,
		VolumeID:         b.VolumeID,
		AvailabilityZone: b.AvailabilityZone,
		CreatedAt:        parseSGSTime(b.CreatedAt),
	}
}

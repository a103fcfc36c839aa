package model

import (
	"time"

	"sg-console-srv/pkg/sgsclient"
)

// Snapshot represents a point-in-time snapshot of a volume.
type Snapshot struct {
	ID          string
	Name        string
	Description string
	Size        int
	Status      string
	VolumeID    string
	CreatedAt   time.Time
}

// NewSnapshotFromSGS converts a gateway snapshot to model Snapshot.
func NewSnapshotFromSGS(s *sgsclient.Snapshot) *Snapshot {
	if s == nil {
		return nil
	}
	return &Snapshot{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Size:        s.Size,
		Status:      s.Status,
		VolumeID:    s.VolumeID,
		CreatedAt:   parseSGSTime(s.CreatedAt),
	}
}

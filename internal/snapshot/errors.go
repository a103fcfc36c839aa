package snapshot

import "errors"

var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrVolumeNotFound   = errors.New("volume not found")
	ErrNameRequired     = errors.New("snapshot name is required")
	ErrGatewayFailed    = errors.New("storage gateway request failed")
)

package backup

import "errors"

var (
	ErrBackupNotFound     = errors.New("backup not found")
	ErrVolumeNotFound     = errors.New("volume not found")
	ErrNameRequired       = errors.New("backup name is required")
	ErrTargetVolumeNeeded = errors.New("target volume is required")
	ErrGatewayFailed      = errors.New("storage gateway request failed")
)

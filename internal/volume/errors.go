package volume

import (
	"errors"
	"fmt"
)

var (
	ErrVolumeNotFound           = errors.New("volume not found")
	ErrInvalidSize              = errors.New("volume size must be at least 1GiB")
	ErrInvalidSourceType        = errors.New("invalid volume source type")
	ErrSnapshotSourceRequired   = errors.New("snapshot source must be specified")
	ErrCheckpointSourceRequired = errors.New("checkpoint source must be specified")
	ErrSourceNotFound           = errors.New("volume source not found")
	ErrSizeTooSmall             = errors.New("volume size is smaller than its source")
	ErrInstanceRequired         = errors.New("instance is required")
	ErrGatewayFailed            = errors.New("storage gateway request failed")
)

// SizeError reports a requested size below the size of the volume it is created from.
type SizeError struct {
	Source  string // "snapshot" or "master_volume"
	MinSize int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("The volume size cannot be less than the %s size (%dGiB)", e.Source, e.MinSize)
}

func (e *SizeError) Is(target error) bool {
	return target == ErrSizeTooSmall
}

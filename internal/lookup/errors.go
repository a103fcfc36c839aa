package lookup

import "errors"

var (
	ErrVolumeLookupFailed      = errors.New("failed to list volumes for lookup")
	ErrReplicationLookupFailed = errors.New("failed to list replications for lookup")
	ErrScopeLookupFailed       = errors.New("failed to resolve token scope")
)

package checkpoint

import "errors"

var (
	ErrCheckpointNotFound  = errors.New("checkpoint not found")
	ErrReplicationNotFound = errors.New("replication not found")
	ErrNameRequired        = errors.New("checkpoint name is required")
	ErrGatewayFailed       = errors.New("storage gateway request failed")
)

package sgsclient

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for the storage gateway.
	DefaultTimeout = 30 * time.Second
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 1 * time.Second

	// HeaderAuthToken carries the caller's token to the gateway.
	HeaderAuthToken = "X-Auth-Token"
)

const (
	PathVolumes      = "/volumes"
	PathSnapshots    = "/snapshots"
	PathBackups      = "/backups"
	PathReplications = "/replications"
	PathCheckpoints  = "/checkpoints"
	PathAuthToken    = "/auth/token"

	pathDetail = "/detail"
	pathAction = "/action"
)

// Volume states used as list filters.
const (
	VolumeStateEnabled   = "enabled"
	VolumeStateAvailable = "available"
)

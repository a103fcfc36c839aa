package sgsclient

import "context"

// ISGS is the storage-gateway REST client. Every call authenticates with the
// given token. Implementations are safe for concurrent use.
type ISGS interface {
	// GetTokenScope returns the project and user token belongs to. A rejected token
	// yields an APIError matching ErrUnauthorized.
	GetTokenScope(ctx context.Context, token string) (*TokenScope, error)

	ListVolumes(ctx context.Context, token string, opts ListOptions) ([]Volume, error)
	GetVolume(ctx context.Context, token, id string) (*Volume, error)
	CreateVolume(ctx context.Context, token string, req CreateVolumeRequest) (*Volume, error)
	UpdateVolume(ctx context.Context, token, id string, req UpdateRequest) (*Volume, error)
	DeleteVolume(ctx context.Context, token, id string) error
	EnableVolume(ctx context.Context, token, id string, req UpdateRequest) error
	DisableVolume(ctx context.Context, token, id string) error
	AttachVolume(ctx context.Context, token, id string, req AttachRequest) error
	DetachVolume(ctx context.Context, token, id, attachmentID string) error

	ListSnapshots(ctx context.Context, token string, opts ListOptions) ([]Snapshot, error)
	GetSnapshot(ctx context.Context, token, id string) (*Snapshot, error)
	CreateSnapshot(ctx context.Context, token string, req CreateSnapshotRequest) (*Snapshot, error)
	UpdateSnapshot(ctx context.Context, token, id string, req UpdateRequest) (*Snapshot, error)
	DeleteSnapshot(ctx context.Context, token, id string) error

	ListBackups(ctx context.Context, token string, opts ListOptions) ([]Backup, error)
	GetBackup(ctx context.Context, token, id string) (*Backup, error)
	CreateBackup(ctx context.Context, token string, req CreateBackupRequest) (*Backup, error)
	DeleteBackup(ctx context.Context, token, id string) error
	RestoreBackup(ctx context.Context, token, id, volumeID string) error

	ListReplications(ctx context.Context, token string, opts ListOptions) ([]Replication, error)
	GetReplication(ctx context.Context, token, id string) (*Replication, error)
	CreateReplication(ctx context.Context, token string, req CreateReplicationRequest) (*Replication, error)
	UpdateReplication(ctx context.Context, token, id string, req UpdateRequest) (*Replication, error)
	DeleteReplication(ctx context.Context, token, id string) error
	EnableReplication(ctx context.Context, token, id string) error
	DisableReplication(ctx context.Context, token, id string) error
	FailoverReplication(ctx context.Context, token, id string) error
	ReverseReplication(ctx context.Context, token, id string) error

	ListCheckpoints(ctx context.Context, token string, opts ListOptions) ([]Checkpoint, error)
	GetCheckpoint(ctx context.Context, token, id string) (*Checkpoint, error)
	CreateCheckpoint(ctx context.Context, token string, req CreateCheckpointRequest) (*Checkpoint, error)
	UpdateCheckpoint(ctx context.Context, token, id string, req UpdateRequest) (*Checkpoint, error)
	DeleteCheckpoint(ctx context.Context, token, id string) error
	RollbackCheckpoint(ctx context.Context, token, id string) error
}

// New creates a new storage-gateway client. Returns the interface.
func New(cfg SGSConfig) ISGS {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient(cfg)
	}
	return &sgsImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}

package sgsclient

import (
	"time"

	pkghttp "sg-console-srv/pkg/http"
)

// SGSConfig holds configuration for the storage-gateway client.
type SGSConfig struct {
	BaseURL    string
	Insecure   bool
	Timeout    time.Duration
	Retries    int
	HTTPClient pkghttp.IClient
}

// ListOptions are the paging and filter parameters of list calls. A zero Limit
// lists everything.
type ListOptions struct {
	Limit   int
	Marker  string
	Sort    string
	Filters map[string]string
}

type Volume struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Size             int          `json:"size"`
	Status           string       `json:"status"`
	ReplicateStatus  string       `json:"replicate_status"`
	VolumeType       string       `json:"volume_type"`
	AvailabilityZone string       `json:"availability_zone"`
	SnapshotID       string       `json:"snapshot_id"`
	ReplicationID    string       `json:"replication_id"`
	Attachments      []Attachment `json:"attachments"`
	CreatedAt        string       `json:"created_at"`
}

type Attachment struct {
	AttachmentID string `json:"attachment_id"`
	ServerID     string `json:"server_id,omitempty"`
	HostName     string `json:"host_name"`
	Mountpoint   string `json:"mountpoint"`
}

type Snapshot struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Size        int    `json:"size"`
	Status      string `json:"status"`
	VolumeID    string `json:"volume_id"`
	CreatedAt   string `json:"created_at"`
}

type Backup struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Size             int    `json:"size"`
	Status           string `json:"status"`
	VolumeID         string `json:"volume_id"`
	AvailabilityZone string `json:"availability_zone"`
	CreatedAt        string `json:"created_at"`
}

type Replication struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	MasterVolume string `json:"master_volume"`
	SlaveVolume  string `json:"slave_volume"`
	CreatedAt    string `json:"created_at"`
}

type Checkpoint struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	ReplicationID string `json:"replication_id"`
	CreatedAt     string `json:"created_at"`
}

type CreateVolumeRequest struct {
	Size             int    `json:"size"`
	Name             string `json:"name,omitempty"`
	Description      string `json:"description,omitempty"`
	VolumeType       string `json:"volume_type,omitempty"`
	SnapshotID       string `json:"snapshot_id,omitempty"`
	CheckpointID     string `json:"checkpoint_id,omitempty"`
	AvailabilityZone string `json:"availability_zone,omitempty"`
}

// UpdateRequest renames a resource. Also the body of volume enable.
type UpdateRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

type AttachRequest struct {
	InstanceUUID string `json:"instance_uuid"`
	Mountpoint   string `json:"mountpoint"`
	Mode         string `json:"mode"`
	HostName     string `json:"host_name,omitempty"`
}

type CreateSnapshotRequest struct {
	VolumeID    string `json:"volume_id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

type CreateBackupRequest struct {
	VolumeID    string `json:"volume_id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

type CreateReplicationRequest struct {
	MasterVolume string `json:"master_volume"`
	SlaveVolume  string `json:"slave_volume"`
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
}

type CreateCheckpointRequest struct {
	ReplicationID string `json:"replication_id"`
	Name          string `json:"name,omitempty"`
	Description   string `json:"description,omitempty"`
}

// sgsImpl implements ISGS.
type sgsImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}

// TokenScope is the project and user a gateway token was issued for.
type TokenScope struct {
	ProjectID string
	UserID    string
}

// Package sgsfake is an in-memory sgsclient.ISGS for tests.
package sgsfake

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"sg-console-srv/pkg/sgsclient"
)

// Call records one mutating call.
type Call struct {
	Method string
	ID     string
	Body   any
}

// Client keeps resources in creation order (oldest first) and lists them the way the
// gateway does: sorted by creation, strictly after the marker, at most Limit items.
type Client struct {
	mu sync.Mutex

	Volumes      []sgsclient.Volume
	Snapshots    []sgsclient.Snapshot
	Backups      []sgsclient.Backup
	Replications []sgsclient.Replication
	Checkpoints  []sgsclient.Checkpoint

	// Projects maps tokens to the project GetTokenScope reports. Unknown tokens are
	// rejected with 401; a nil map accepts every token as Project. GetTokenScope
	// ignores Err and Tokens so resource errors can be staged behind authentication.
	Projects  map[string]string
	Project   string
	User      string
	AuthErr   error
	AuthCalls int

	// Err, when set, is returned by every call.
	Err error
	// ListErr, when set, is returned by list calls.
	ListErr error

	Calls     []Call
	ListCalls []sgsclient.ListOptions
	Tokens    []string

	seq int
}

var _ sgsclient.ISGS = (*Client)(nil)

func notFound(kind, id string) error {
	return &sgsclient.APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("%s %s could not be found.", kind, id)}
}

func (c *Client) begin(token string) error {
	c.Tokens = append(c.Tokens, token)
	return c.Err
}

func (c *Client) record(method, id string, body any) {
	c.Calls = append(c.Calls, Call{Method: method, ID: id, Body: body})
}

func (c *Client) nextID(prefix string) string {
	c.seq++
	return fmt.Sprintf("%s-%d", prefix, c.seq)
}

// CallsTo returns the recorded calls of method.
func (c *Client) CallsTo(method string) []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []Call
	for _, call := range c.Calls {
		if call.Method == method {
			out = append(out, call)
		}
	}
	return out
}

func page[T any](c *Client, items []T, id func(T) string, keep func(T) bool, opts sgsclient.ListOptions) ([]T, error) {
	c.ListCalls = append(c.ListCalls, opts)
	if c.ListErr != nil {
		return nil, c.ListErr
	}

	ordered := make([]T, 0, len(items))
	for _, item := range items {
		if keep == nil || keep(item) {
			ordered = append(ordered, item)
		}
	}
	if !strings.HasSuffix(opts.Sort, ":asc") {
		for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	}

	if opts.Marker != "" {
		start := -1
		for i, item := range ordered {
			if id(item) == opts.Marker {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return nil, &sgsclient.APIError{StatusCode: http.StatusBadRequest, Message: "marker not found"}
		}
		ordered = ordered[start:]
	}

	if opts.Limit > 0 && len(ordered) > opts.Limit {
		ordered = ordered[:opts.Limit]
	}
	return ordered, nil
}

func find[T any](items []T, id func(T) string, want string) (int, bool) {
	for i, item := range items {
		if id(item) == want {
			return i, true
		}
	}
	return -1, false
}

func volumeID(v sgsclient.Volume) string           { return v.ID }
func snapshotID(s sgsclient.Snapshot) string       { return s.ID }
func backupID(b sgsclient.Backup) string           { return b.ID }
func replicationID(r sgsclient.Replication) string { return r.ID }
func checkpointID(cp sgsclient.Checkpoint) string  { return cp.ID }

func (c *Client) GetTokenScope(_ context.Context, token string) (*sgsclient.TokenScope, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.AuthCalls++
	if c.AuthErr != nil {
		return nil, c.AuthErr
	}
	project := c.Project
	if c.Projects != nil {
		var ok bool
		if project, ok = c.Projects[token]; !ok {
			return nil, &sgsclient.APIError{StatusCode: http.StatusUnauthorized, Message: "The request you have made requires authentication."}
		}
	}
	return &sgsclient.TokenScope{ProjectID: project, UserID: c.User}, nil
}

func (c *Client) ListVolumes(_ context.Context, token string, opts sgsclient.ListOptions) ([]sgsclient.Volume, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return nil, err
	}
	status := opts.Filters["status"]
	return page(c, c.Volumes, volumeID, func(v sgsclient.Volume) bool {
		return status == "" || v.Status == status
	}, opts)
}

func (c *Client) GetVolume(_ context.Context, token, id string) (*sgsclient.Volume, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return nil, err
	}
	i, ok := find(c.Volumes, volumeID, id)
	if !ok {
		return nil, notFound("Volume", id)
	}
	v := c.Volumes[i]
	return &v, nil
}

func (c *Client) CreateVolume(_ context.Context, token string, req sgsclient.CreateVolumeRequest) (*sgsclient.Volume, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return nil, err
	}
	v := sgsclient.Volume{
		ID:               c.nextID("vol"),
		Name:             req.Name,
		Description:      req.Description,
		Size:             req.Size,
		Status:           "creating",
		VolumeType:       req.VolumeType,
		AvailabilityZone: req.AvailabilityZone,
		SnapshotID:       req.SnapshotID,
	}
	c.Volumes = append(c.Volumes, v)
	c.record("CreateVolume", v.ID, req)
	return &v, nil
}

func (c *Client) UpdateVolume(_ context.Context, token, id string, req sgsclient.UpdateRequest) (*sgsclient.Volume, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return nil, err
	}
	i, ok := find(c.Volumes, volumeID, id)
	if !ok {
		return nil, notFound("Volume", id)
	}
	c.Volumes[i].Name = req.Name
	c.Volumes[i].Description = req.Description
	c.record("UpdateVolume", id, req)
	v := c.Volumes[i]
	return &v, nil
}

func (c *Client) DeleteVolume(_ context.Context, token, id string) error {
	return c.mutate(token, "DeleteVolume", id, nil, c.hasVolume)
}

func (c *Client) EnableVolume(_ context.Context, token, id string, req sgsclient.UpdateRequest) error {
	return c.mutate(token, "EnableVolume", id, req, c.hasVolume)
}

func (c *Client) DisableVolume(_ context.Context, token, id string) error {
	return c.mutate(token, "DisableVolume", id, nil, c.hasVolume)
}

func (c *Client) AttachVolume(_ context.Context, token, id string, req sgsclient.AttachRequest) error {
	return c.mutate(token, "AttachVolume", id, req, c.hasVolume)
}

func (c *Client) DetachVolume(_ context.Context, token, id, attachmentID string) error {
	return c.mutate(token, "DetachVolume", id, attachmentID, c.hasVolume)
}

func (c *Client) ListSnapshots(_ context.Context, token string, opts sgsclient.ListOptions) ([]sgsclient.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return nil, err
	}
	return page(c, c.Snapshots, snapshotID, nil, opts)
}

func (c *Client) GetSnapshot(_ context.Context, token, id string) (*sgsclient.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return nil, err
	}
	i, ok := find(c.Snapshots, snapshotID, id)
	if !ok {
		return nil, notFound("Snapshot", id)
	}
	s := c.Snapshots[i]
	return &s, nil
}

func (c *Client) CreateSnapshot(_ context.Context, token string, req sgsclient.CreateSnapshotRequest) (*sgsclient.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return nil, err
	}
	s := sgsclient.Snapshot{ID: c.nextID("snap"), Name: req.Name, Description: req.Description, VolumeID: req.VolumeID, Status: "creating"}
	c.Snapshots = append(c.Snapshots, s)
	c.record("CreateSnapshot", s.ID, req)
	return &s, nil
}

func (c *Client) UpdateSnapshot(_ context.Context, token, id string, req sgsclient.UpdateRequest) (*sgsclient.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return nil, err
	}
	i, ok := find(c.Snapshots, snapshotID, id)
	if !ok {
		return nil, notFound("Snapshot", id)
	}
	c.Snapshots[i].Name = req.Name
	c.Snapshots[i].Description = req.Description
	c.record("UpdateSnapshot", id, req)
	s := c.Snapshots[i]
	return &s, nil
}

func (c *Client) DeleteSnapshot(_ context.Context, token, id string) error {
	return c.mutate(token, "DeleteSnapshot", id, nil, func(id string) bool {
		_, ok := find(c.Snapshots, snapshotID, id)
		return ok
	})
}

func (c *Client) ListBackups(_ context.Context, token string, opts sgsclient.ListOptions) ([]sgsclient.Backup, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return nil, err
	}
	return page(c, c.Backups, backupID, nil, opts)
}

func (c *Client) GetBackup(_ context.Context, token, id string) (*sgsclient.Backup, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return nil, err
	}
	i, ok := find(c.Backups, backupID, id)
	if !ok {
		return nil, notFound("Backup", id)
	}
	b := c.Backups[i]
	return &b, nil
}

func (c *Client) CreateBackup(_ context.Context, token string, req sgsclient.CreateBackupRequest) (*sgsclient.Backup, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return nil, err
	}
	b := sgsclient.Backup{ID: c.nextID("backup"), Name: req.Name, Description: req.Description, VolumeID: req.VolumeID, Status: "creating"}
	c.Backups = append(c.Backups, b)
	c.record("CreateBackup", b.ID, req)
	return &b, nil
}

func (c *Client) DeleteBackup(_ context.Context, token, id string) error {
	return c.mutate(token, "DeleteBackup", id, nil, c.hasBackup)
}

func (c *Client) RestoreBackup(_ context.Context, token, id, volumeID string) error {
	return c.mutate(token, "RestoreBackup", id, volumeID, c.hasBackup)
}

func (c *Client) ListReplications(_ context.Context, token string, opts sgsclient.ListOptions) ([]sgsclient.Replication, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return nil, err
	}
	return page(c, c.Replications, replicationID, nil, opts)
}

func (c *Client) GetReplication(_ context.Context, token, id string) (*sgsclient.Replication, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return nil, err
	}
	i, ok := find(c.Replications, replicationID, id)
	if !ok {
		return nil, notFound("Replication", id)
	}
	r := c.Replications[i]
	return &r, nil
}

func (c *Client) CreateReplication(_ context.Context, token string, req sgsclient.CreateReplicationRequest) (*sgsclient.Replication, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return nil, err
	}
	r := sgsclient.Replication{
		ID:           c.nextID("rep"),
		Name:         req.Name,
		Description:  req.Description,
		MasterVolume: req.MasterVolume,
		SlaveVolume:  req.SlaveVolume,
		Status:       "creating",
	}
	c.Replications = append(c.Replications, r)
	c.record("CreateReplication", r.ID, req)
	return &r, nil
}

func (c *Client) UpdateReplication(_ context.Context, token, id string, req sgsclient.UpdateRequest) (*sgsclient.Replication, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return nil, err
	}
	i, ok := find(c.Replications, replicationID, id)
	if !ok {
		return nil, notFound("Replication", id)
	}
	c.Replications[i].Name = req.Name
	c.Replications[i].Description = req.Description
	c.record("UpdateReplication", id, req)
	r := c.Replications[i]
	return &r, nil
}

func (c *Client) DeleteReplication(_ context.Context, token, id string) error {
	return c.mutate(token, "DeleteReplication", id, nil, c.hasReplication)
}

func (c *Client) EnableReplication(_ context.Context, token, id string) error {
	return c.mutate(token, "EnableReplication", id, nil, c.hasReplication)
}

func (c *Client) DisableReplication(_ context.Context, token, id string) error {
	return c.mutate(token, "DisableReplication", id, nil, c.hasReplication)
}

func (c *Client) FailoverReplication(_ context.Context, token, id string) error {
	return c.mutate(token, "FailoverReplication", id, nil, c.hasReplication)
}

func (c *Client) ReverseReplication(_ context.Context, token, id string) error {
	return c.mutate(token, "ReverseReplication", id, nil, c.hasReplication)
}

func (c *Client) ListCheckpoints(_ context.Context, token string, opts sgsclient.ListOptions) ([]sgsclient.Checkpoint, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return nil, err
	}
	return page(c, c.Checkpoints, checkpointID, nil, opts)
}

func (c *Client) GetCheckpoint(_ context.Context, token, id string) (*sgsclient.Checkpoint, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return nil, err
	}
	i, ok := find(c.Checkpoints, checkpointID, id)
	if !ok {
		return nil, notFound("Checkpoint", id)
	}
	cp := c.Checkpoints[i]
	return &cp, nil
}

func (c *Client) CreateCheckpoint(_ context.Context, token string, req sgsclient.CreateCheckpointRequest) (*sgsclient.Checkpoint, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return nil, err
	}
	cp := sgsclient.Checkpoint{ID: c.nextID("cp"), Name: req.Name, Description: req.Description, ReplicationID: req.ReplicationID, Status: "creating"}
	c.Checkpoints = append(c.Checkpoints, cp)
	c.record("CreateCheckpoint", cp.ID, req)
	return &cp, nil
}

func (c *Client) UpdateCheckpoint(_ context.Context, token, id string, req sgsclient.UpdateRequest) (*sgsclient.Checkpoint, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return nil, err
	}
	i, ok := find(c.Checkpoints, checkpointID, id)
	if !ok {
		return nil, notFound("Checkpoint", id)
	}
	c.Checkpoints[i].Name = req.Name
	c.Checkpoints[i].Description = req.Description
	c.record("UpdateCheckpoint", id, req)
	cp := c.Checkpoints[i]
	return &cp, nil
}

func (c *Client) DeleteCheckpoint(_ context.Context, token, id string) error {
	return c.mutate(token, "DeleteCheckpoint", id, nil, c.hasCheckpoint)
}

func (c *Client) RollbackCheckpoint(_ context.Context, token, id string) error {
	return c.mutate(token, "RollbackCheckpoint", id, nil, c.hasCheckpoint)
}

func (c *Client) mutate(token, method, id string, body any, exists func(string) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(token); err != nil {
		return err
	}
	if !exists(id) {
		return notFound("Resource", id)
	}
	c.record(method, id, body)
	return nil
}

func (c *Client) hasVolume(id string) bool {
	_, ok := find(c.Volumes, volumeID, id)
	return ok
}

func (c *Client) hasBackup(id string) bool {
	_, ok := find(c.Backups, backupID, id)
	return ok
}

func (c *Client) hasReplication(id string) bool {
	_, ok := find(c.Replications, replicationID, id)
	return ok
}

func (c *Client) hasCheckpoint(id string) bool {
	_, ok := find(c.Checkpoints, checkpointID, id)
	return ok
}

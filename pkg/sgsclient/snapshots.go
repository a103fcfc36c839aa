package sgsclient

import "context"

func (c *sgsImpl) ListSnapshots(ctx context.Context, token string, opts ListOptions) ([]Snapshot, error) {
	var out struct {
		Snapshots []Snapshot `json:"snapshots"`
	}
	if err := c.get(ctx, token, PathSnapshots+pathDetail, opts.query(), &out); err != nil {
		return nil, err
	}
	return out.Snapshots, nil
}

func (c *sgsImpl) GetSnapshot(ctx context.Context, token, id string) (*Snapshot, error) {
	var out struct {
		Snapshot Snapshot `json:"snapshot"`
	}
	if err := c.get(ctx, token, resourcePath(PathSnapshots, id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Snapshot, nil
}

func (c *sgsImpl) CreateSnapshot(ctx context.Context, token string, req CreateSnapshotRequest) (*Snapshot, error) {
	var out struct {
		Snapshot Snapshot `json:"snapshot"`
	}
	in := map[string]any{"snapshot": req}
	if err := c.post(ctx, token, PathSnapshots, in, &out); err != nil {
		return nil, err
	}
	return &out.Snapshot, nil
}

func (c *sgsImpl) UpdateSnapshot(ctx context.Context, token, id string, req UpdateRequest) (*Snapshot, error) {
	var out struct {
		Snapshot Snapshot `json:"snapshot"`
	}
	in := map[string]any{"snapshot": req}
	if err := c.put(ctx, token, resourcePath(PathSnapshots, id), in, &out); err != nil {
		return nil, err
	}
	return &out.Snapshot, nil
}

func (c *sgsImpl) DeleteSnapshot(ctx context.Context, token, id string) error {
	return c.delete(ctx, token, resourcePath(PathSnapshots, id))
}

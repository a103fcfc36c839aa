package sgsclient

import "context"

func (c *sgsImpl) ListCheckpoints(ctx context.Context, token string, opts ListOptions) ([]Checkpoint, error) {
	var out struct {
		Checkpoints []Checkpoint `json:"checkpoints"`
	}
	if err := c.get(ctx, token, PathCheckpoints+pathDetail, opts.query(), &out); err != nil {
		return nil, err
	}
	return out.Checkpoints, nil
}

func (c *sgsImpl) GetCheckpoint(ctx context.Context, token, id string) (*Checkpoint, error) {
	var out struct {
		Checkpoint Checkpoint `json:"checkpoint"`
	}
	if err := c.get(ctx, token, resourcePath(PathCheckpoints, id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Checkpoint, nil
}

func (c *sgsImpl) CreateCheckpoint(ctx context.Context, token string, req CreateCheckpointRequest) (*Checkpoint, error) {
	var out struct {
		Checkpoint Checkpoint `json:"checkpoint"`
	}
	in := map[string]any{"checkpoint": req}
	if err := c.post(ctx, token, PathCheckpoints, in, &out); err != nil {
		return nil, err
	}
	return &out.Checkpoint, nil
}

func (c *sgsImpl) UpdateCheckpoint(ctx context.Context, token, id string, req UpdateRequest) (*Checkpoint, error) {
	var out struct {
		Checkpoint Checkpoint `json:"checkpoint"`
	}
	in := map[string]any{"checkpoint": req}
	if err := c.put(ctx, token, resourcePath(PathCheckpoints, id), in, &out); err != nil {
		return nil, err
	}
	return &out.Checkpoint, nil
}

func (c *sgsImpl) DeleteCheckpoint(ctx context.Context, token, id string) error {
	return c.delete(ctx, token, resourcePath(PathCheckpoints, id))
}

// RollbackCheckpoint rolls the replication back to the checkpoint.
func (c *sgsImpl) RollbackCheckpoint(ctx context.Context, token, id string) error {
	return c.action(ctx, token, resourcePath(PathCheckpoints, id), "rollback", nil)
}

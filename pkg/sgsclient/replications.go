package sgsclient

import "context"

func (c *sgsImpl) ListReplications(ctx context.Context, token string, opts ListOptions) ([]Replication, error) {
	var out struct {
		Replications []Replication `json:"replications"`
	}
	if err := c.get(ctx, token, PathReplications+pathDetail, opts.query(), &out); err != nil {
		return nil, err
	}
	return out.Replications, nil
}

func (c *sgsImpl) GetReplication(ctx context.Context, token, id string) (*Replication, error) {
	var out struct {
		Replication Replication `json:"replication"`
	}
	if err := c.get(ctx, token, resourcePath(PathReplications, id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Replication, nil
}

func (c *sgsImpl) CreateReplication(ctx context.Context, token string, req CreateReplicationRequest) (*Replication, error) {
	var out struct {
		Replication Replication `json:"replication"`
	}
	in := map[string]any{"replication": req}
	if err := c.post(ctx, token, PathReplications, in, &out); err != nil {
		return nil, err
	}
	return &out.Replication, nil
}

func (c *sgsImpl) UpdateReplication(ctx context.Context, token, id string, req UpdateRequest) (*Replication, error) {
	var out struct {
		Replication Replication `json:"replication"`
	}
	in := map[string]any{"replication": req}
	if err := c.put(ctx, token, resourcePath(PathReplications, id), in, &out); err != nil {
		return nil, err
	}
	return &out.Replication, nil
}

func (c *sgsImpl) DeleteReplication(ctx context.Context, token, id string) error {
	return c.delete(ctx, token, resourcePath(PathReplications, id))
}

func (c *sgsImpl) EnableReplication(ctx context.Context, token, id string) error {
	return c.action(ctx, token, resourcePath(PathReplications, id), "enable", nil)
}

func (c *sgsImpl) DisableReplication(ctx context.Context, token, id string) error {
	return c.action(ctx, token, resourcePath(PathReplications, id), "disable", nil)
}

func (c *sgsImpl) FailoverReplication(ctx context.Context, token, id string) error {
	return c.action(ctx, token, resourcePath(PathReplications, id), "failover", nil)
}

func (c *sgsImpl) ReverseReplication(ctx context.Context, token, id string) error {
	return c.action(ctx, token, resourcePath(PathReplications, id), "reverse", nil)
}

package sgsclient

import "context"

// ListVolumes lists volumes with details.
func (c *sgsImpl) ListVolumes(ctx context.Context, token string, opts ListOptions) ([]Volume, error) {
	var out struct {
		Volumes []Volume `json:"volumes"`
	}
	if err := c.get(ctx, token, PathVolumes+pathDetail, opts.query(), &out); err != nil {
		return nil, err
	}
	return out.Volumes, nil
}

func (c *sgsImpl) GetVolume(ctx context.Context, token, id string) (*Volume, error) {
	var out struct {
		Volume Volume `json:"volume"`
	}
	if err := c.get(ctx, token, resourcePath(PathVolumes, id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Volume, nil
}

func (c *sgsImpl) CreateVolume(ctx context.Context, token string, req CreateVolumeRequest) (*Volume, error) {
	var out struct {
		Volume Volume `json:"volume"`
	}
	in := map[string]any{"volume": req}
	if err := c.post(ctx, token, PathVolumes, in, &out); err != nil {
		return nil, err
	}
	return &out.Volume, nil
}

func (c *sgsImpl) UpdateVolume(ctx context.Context, token, id string, req UpdateRequest) (*Volume, error) {
	var out struct {
		Volume Volume `json:"volume"`
	}
	in := map[string]any{"volume": req}
	if err := c.put(ctx, token, resourcePath(PathVolumes, id), in, &out); err != nil {
		return nil, err
	}
	return &out.Volume, nil
}

func (c *sgsImpl) DeleteVolume(ctx context.Context, token, id string) error {
	return c.delete(ctx, token, resourcePath(PathVolumes, id))
}

// EnableVolume puts an existing backend volume under gateway management.
func (c *sgsImpl) EnableVolume(ctx context.Context, token, id string, req UpdateRequest) error {
	return c.action(ctx, token, resourcePath(PathVolumes, id), "enable", req)
}

func (c *sgsImpl) DisableVolume(ctx context.Context, token, id string) error {
	return c.action(ctx, token, resourcePath(PathVolumes, id), "disable", nil)
}

func (c *sgsImpl) AttachVolume(ctx context.Context, token, id string, req AttachRequest) error {
	return c.action(ctx, token, resourcePath(PathVolumes, id), "attach", req)
}

func (c *sgsImpl) DetachVolume(ctx context.Context, token, id, attachmentID string) error {
	return c.action(ctx, token, resourcePath(PathVolumes, id), "detach",
		map[string]string{"attachment_id": attachmentID})
}

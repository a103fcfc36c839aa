package sgsclient

import "context"

func (c *sgsImpl) ListBackups(ctx context.Context, token string, opts ListOptions) ([]Backup, error) {
	var out struct {
		Backups []Backup `json:"backups"`
	}
	if err := c.get(ctx, token, PathBackups+pathDetail, opts.query(), &out); err != nil {
		return nil, err
	}
	return out.Backups, nil
}

func (c *sgsImpl) GetBackup(ctx context.Context, token, id string) (*Backup, error) {
	var out struct {
		Backup Backup `json:"backup"`
	}
	if err := c.get(ctx, token, resourcePath(PathBackups, id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Backup, nil
}

func (c *sgsImpl) CreateBackup(ctx context.Context, token string, req CreateBackupRequest) (*Backup, error) {
	var out struct {
		Backup Backup `json:"backup"`
	}
	in := map[string]any{"backup": req}
	if err := c.post(ctx, token, PathBackups, in, &out); err != nil {
		return nil, err
	}
	return &out.Backup, nil
}

func (c *sgsImpl) DeleteBackup(ctx context.Context, token, id string) error {
	return c.delete(ctx, token, resourcePath(PathBackups, id))
}

// RestoreBackup restores the backup onto volumeID.
func (c *sgsImpl) RestoreBackup(ctx context.Context, token, id, volumeID string) error {
	in := map[string]any{"restore": map[string]string{"volume_id": volumeID}}
	return c.post(ctx, token, resourcePath(PathBackups, id)+"/restore", in, nil)
}

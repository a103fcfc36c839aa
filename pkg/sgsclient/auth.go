package sgsclient

import "context"

func (c *sgsImpl) GetTokenScope(ctx context.Context, token string) (*TokenScope, error) {
	var out struct {
		Token struct {
			Project struct {
				ID string `json:"id"`
			} `json:"project"`
			User struct {
				ID string `json:"id"`
			} `json:"user"`
		} `json:"token"`
	}
	if err := c.get(ctx, token, PathAuthToken, nil, &out); err != nil {
		return nil, err
	}
	return &TokenScope{
		ProjectID: out.Token.Project.ID,
		UserID:    out.Token.User.ID,
	}, nil
}

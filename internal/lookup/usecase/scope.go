package usecase

import (
	"context"
	"errors"
	"fmt"

	"sg-console-srv/internal/lookup"
	"sg-console-srv/internal/lookup/repository"
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/scope"
	"sg-console-srv/pkg/sgsclient"
)

// ResolveScope asks the gateway which project the token belongs to. A requested project
// that differs is refused; an empty one is filled in.
func (uc *implUseCase) ResolveScope(ctx context.Context, sc model.Scope) (model.Scope, error) {
	ts, err := uc.tokenScope(ctx, sc.Token)
	if err != nil {
		return model.Scope{}, err
	}
	if ts.ProjectID == "" {
		return model.Scope{}, scope.ErrUnscopedToken
	}
	if sc.ProjectID != "" && sc.ProjectID != ts.ProjectID {
		uc.l.Warnf(ctx, "lookup.usecase.ResolveScope: project %q requested with a token of project %q", sc.ProjectID, ts.ProjectID)
		return model.Scope{}, scope.ErrProjectMismatch
	}

	sc.ProjectID = ts.ProjectID
	if ts.UserID != "" {
		sc.UserID = ts.UserID
	}
	return sc, nil
}

func (uc *implUseCase) tokenScope(ctx context.Context, token string) (sgsclient.TokenScope, error) {
	if uc.cache != nil {
		ts, err := uc.cache.GetTokenScope(ctx, token)
		if err == nil {
			return ts, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "lookup.usecase.tokenScope: cache unavailable, falling back to sgs: %v", err)
		}
	}

	ts, err := uc.sgs.GetTokenScope(ctx, token)
	if err != nil {
		if errors.Is(err, sgsclient.ErrUnauthorized) {
			return sgsclient.TokenScope{}, fmt.Errorf("%w: %w", scope.ErrInvalidToken, err)
		}
		uc.l.Warnf(ctx, "lookup.usecase.tokenScope: sgs GetTokenScope failed: %v", err)
		return sgsclient.TokenScope{}, fmt.Errorf("%w: %w", lookup.ErrScopeLookupFailed, err)
	}

	if uc.cache != nil && ts.ProjectID != "" {
		_ = uc.cache.SaveTokenScope(ctx, token, *ts)
	}
	return *ts, nil
}

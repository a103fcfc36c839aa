package middleware

import (
	"context"

	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/log"
)

// ScopeResolver confirms a request scope against the storage gateway.
type ScopeResolver interface {
	ResolveScope(ctx context.Context, sc model.Scope) (model.Scope, error)
}

type Middleware struct {
	l      log.Logger
	scopes ScopeResolver
}

func New(l log.Logger, scopes ScopeResolver) Middleware {
	return Middleware{
		l:      l,
		scopes: scopes,
	}
}

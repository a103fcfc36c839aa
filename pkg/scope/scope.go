package scope

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"sg-console-srv/internal/model"
)

const (
	HeaderAuthToken = "X-Auth-Token"
	HeaderProjectID = "X-Project-Id"
	HeaderUserID    = "X-User-Id"
)

var (
	// ErrMissingToken is returned when the request carries no gateway token.
	ErrMissingToken = errors.New("scope: missing auth token")
	// ErrInvalidToken is returned when the gateway rejects the token.
	ErrInvalidToken = errors.New("scope: token rejected by gateway")
	// ErrUnscopedToken is returned when the token is not bound to a project.
	ErrUnscopedToken = errors.New("scope: token has no project")
	// ErrProjectMismatch is returned when the requested project is not the token's project.
	ErrProjectMismatch = errors.New("scope: project does not match token")
)

type scopeCtxKey struct{}

// FromHeaders builds a Scope from request headers. The token may also come as
// "Authorization: Bearer <token>".
func FromHeaders(h http.Header) (model.Scope, error) {
	token := strings.TrimSpace(h.Get(HeaderAuthToken))
	if token == "" {
		if auth := h.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		}
	}
	if token == "" {
		return model.Scope{}, ErrMissingToken
	}

	return model.Scope{
		Token:     token,
		ProjectID: strings.TrimSpace(h.Get(HeaderProjectID)),
		UserID:    strings.TrimSpace(h.Get(HeaderUserID)),
	}, nil
}

// SetScopeToContext stores sc in ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the Scope stored by SetScopeToContext, or the zero Scope.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, _ := ctx.Value(scopeCtxKey{}).(model.Scope)
	return sc
}

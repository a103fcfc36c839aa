package middleware

import (
	"errors"
	"net/http"

	pkgErrors "sg-console-srv/pkg/errors"
	"sg-console-srv/pkg/response"
	"sg-console-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidToken    = pkgErrors.NewHTTPError(http.StatusUnauthorized, response.MessageUnauthorized)
	errUnscopedToken   = pkgErrors.NewHTTPError(http.StatusForbidden, "Token is not scoped to a project.")
	errProjectMismatch = pkgErrors.NewHTTPError(http.StatusForbidden, "Token is not valid for the requested project.")
	errScopeUnverified = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Unable to verify credentials.")
)

var authErrors = response.ErrorMapping{
	scope.ErrInvalidToken:    errInvalidToken,
	scope.ErrUnscopedToken:   errUnscopedToken,
	scope.ErrProjectMismatch: errProjectMismatch,
}

// Auth reads the gateway token from the request and resolves the project and user it
// belongs to. The resolved scope, never the raw headers, is stored on the request.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sc, err := scope.FromHeaders(c.Request.Header)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: %v | Path: %s", err, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc, err = m.scopes.ResolveScope(ctx, sc)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: %v | Path: %s", err, c.Request.URL.Path)
			response.Error(c, authError(err))
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))
		c.Next()
	}
}

func authError(err error) *pkgErrors.HTTPError {
	for target, httpErr := range authErrors {
		if errors.Is(err, target) {
			return httpErr
		}
	}
	return errScopeUnverified
}

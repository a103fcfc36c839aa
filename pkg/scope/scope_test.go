package scope

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHeaders(t *testing.T) {
	h := http.Header{}
	h.Set(HeaderAuthToken, "tok")
	h.Set(HeaderProjectID, "p1")
	h.Set(HeaderUserID, "u1")

	sc, err := FromHeaders(h)

	require.NoError(t, err)
	assert.Equal(t, "tok", sc.Token)
	assert.Equal(t, "p1", sc.ProjectID)
	assert.Equal(t, "u1", sc.UserID)
}

func TestFromHeaders_BearerFallback(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer abc")

	sc, err := FromHeaders(h)

	require.NoError(t, err)
	assert.Equal(t, "abc", sc.Token)
}

func TestFromHeaders_Missing(t *testing.T) {
	_, err := FromHeaders(http.Header{})
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetScopeFromContext(ctx).Token)

	h := http.Header{}
	h.Set(HeaderAuthToken, "tok")
	sc, err := FromHeaders(h)
	require.NoError(t, err)

	ctx = SetScopeToContext(ctx, sc)
	assert.Equal(t, sc, GetScopeFromContext(ctx))
}

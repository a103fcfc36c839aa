package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/middleware"
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/log"
	"sg-console-srv/pkg/paginator"
	"sg-console-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	actionlog.UseCase
	input actionlog.ListInput
	sc    model.Scope
	out   actionlog.ListOutput
	err   error

	exportInput actionlog.ExportInput
	exportOut   actionlog.ExportOutput
}

func (u *fakeUseCase) List(ctx context.Context, sc model.Scope, input actionlog.ListInput) (actionlog.ListOutput, error) {
	u.sc = sc
	u.input = input
	return u.out, u.err
}

func (u *fakeUseCase) Export(ctx context.Context, sc model.Scope, input actionlog.ExportInput) (actionlog.ExportOutput, error) {
	u.sc = sc
	u.exportInput = input
	return u.exportOut, u.err
}

// tokenScopes resolves "tok" to p1 and rejects every other token.
type tokenScopes struct{}

func (tokenScopes) ResolveScope(_ context.Context, sc model.Scope) (model.Scope, error) {
	if sc.Token != "tok" {
		return model.Scope{}, scope.ErrInvalidToken
	}
	if sc.ProjectID != "" && sc.ProjectID != "p1" {
		return model.Scope{}, scope.ErrProjectMismatch
	}
	sc.ProjectID = "p1"
	return sc, nil
}

func newTestRouter(uc actionlog.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(log.NewNop(), uc, 20).RegisterRoutes(r.Group(""), middleware.New(log.NewNop(), tokenScopes{}))
	return r
}

func doRequest(r *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doList(r *gin.Engine, query string) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodGet, "/api/v1/action-logs"+query, map[string]string{
		scope.HeaderAuthToken: "tok",
		scope.HeaderProjectID: "p1",
	})
}

func TestList(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("previous page", func(t *testing.T) {
		uc := &fakeUseCase{out: actionlog.ListOutput{Page: paginator.Page[model.ActionLog]{
			Items: []model.ActionLog{
				{ID: "a2", Action: "create", ResourceType: "volume", ResourceID: "vol-2", CreatedAt: created},
				{ID: "a3", Action: "delete", ResourceType: "volume", ResourceID: "vol-3", CreatedAt: created},
			},
			HasMore:   true,
			HasPrev:   true,
			Direction: paginator.DirectionAsc,
		}}}
		w := doList(newTestRouter(uc), "?prev_marker=a1&page_size=2&resource_type=volume")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, paginator.Request{Marker: "a1", Direction: paginator.DirectionAsc, PageSize: 2}, uc.input.Page)
		assert.Equal(t, "volume", uc.input.ResourceType)
		assert.Equal(t, "p1", uc.sc.ProjectID)
		assert.JSONEq(t, `{
			"error_code": 0,
			"message": "Success",
			"data": {
				"items": [
					{"id":"a3","action":"delete","resource_type":"volume","resource_id":"vol-3","created_at":"2026-03-01T10:00:00Z"},
					{"id":"a2","action":"create","resource_type":"volume","resource_id":"vol-2","created_at":"2026-03-01T10:00:00Z"}
				],
				"has_more": true,
				"has_prev": true,
				"next_marker": "a2",
				"prev_marker": "a3"
			}
		}`, w.Body.String())
	})

	t.Run("retrieval failure degrades", func(t *testing.T) {
		uc := &fakeUseCase{
			out: actionlog.ListOutput{Page: paginator.Page[model.ActionLog]{Items: []model.ActionLog{}}},
			err: fmt.Errorf("%w: db down", paginator.ErrRetrievalFailed),
		}
		w := doList(newTestRouter(uc), "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"error_code": 503,
			"message": "Unable to retrieve action logs.",
			"data": {"items": [], "has_more": false, "has_prev": false}
		}`, w.Body.String())
	})

	t.Run("unknown marker", func(t *testing.T) {
		uc := &fakeUseCase{err: fmt.Errorf("%w: %w", actionlog.ErrMarkerNotFound, paginator.ErrRetrievalFailed)}
		w := doList(newTestRouter(uc), "?marker=gone")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		newTestRouter(&fakeUseCase{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/action-logs", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		uc := &fakeUseCase{}
		w := doRequest(newTestRouter(uc), http.MethodGet, "/api/v1/action-logs", map[string]string{
			scope.HeaderAuthToken: "any-garbage-token",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, uc.sc.Token, "usecase not reached")
	})

	t.Run("forged project", func(t *testing.T) {
		uc := &fakeUseCase{}
		w := doRequest(newTestRouter(uc), http.MethodGet, "/api/v1/action-logs", map[string]string{
			scope.HeaderAuthToken: "tok",
			scope.HeaderProjectID: "p2",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, uc.sc.Token, "usecase not reached")
	})

	t.Run("project taken from token", func(t *testing.T) {
		uc := &fakeUseCase{}
		w := doRequest(newTestRouter(uc), http.MethodGet, "/api/v1/action-logs", map[string]string{
			scope.HeaderAuthToken: "tok",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "p1", uc.sc.ProjectID)
	})

	t.Run("usecase refuses missing project", func(t *testing.T) {
		w := doList(newTestRouter(&fakeUseCase{err: actionlog.ErrProjectRequired}), "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestExport(t *testing.T) {
	doExport := func(r *gin.Engine, query string) *httptest.ResponseRecorder {
		return doRequest(r, http.MethodPost, "/api/v1/action-logs/export"+query, map[string]string{
			scope.HeaderAuthToken: "tok",
			scope.HeaderProjectID: "p1",
		})
	}

	t.Run("ok", func(t *testing.T) {
		uc := &fakeUseCase{exportOut: actionlog.ExportOutput{
			URL:       "https://minio.local/x.csv",
			ExpiresAt: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
			FileName:  "x.csv",
			Rows:      2,
		}}
		w := doExport(newTestRouter(uc), "?resource_type=checkpoint")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "checkpoint", uc.exportInput.ResourceType)
		assert.Equal(t, "p1", uc.sc.ProjectID)
		assert.JSONEq(t, `{
			"error_code": 0,
			"message": "Success",
			"data": {"url": "https://minio.local/x.csv", "expires_at": "2026-03-01T10:30:00Z", "file_name": "x.csv", "rows": 2}
		}`, w.Body.String())
	})

	t.Run("not configured", func(t *testing.T) {
		w := doExport(newTestRouter(&fakeUseCase{err: actionlog.ErrExportUnavailable}), "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("forged project", func(t *testing.T) {
		uc := &fakeUseCase{}
		w := doRequest(newTestRouter(uc), http.MethodPost, "/api/v1/action-logs/export", map[string]string{
			scope.HeaderAuthToken: "tok",
			scope.HeaderProjectID: "p2",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, uc.exportInput.ResourceType)
		assert.Empty(t, uc.sc.Token)
	})

	t.Run("storage failure", func(t *testing.T) {
		w := doExport(newTestRouter(&fakeUseCase{err: fmt.Errorf("%w: upload", actionlog.ErrExportFailed)}), "")
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

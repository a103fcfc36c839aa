package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	actionlogUsecase "sg-console-srv/internal/actionlog/usecase"
	lookupUsecase "sg-console-srv/internal/lookup/usecase"
	"sg-console-srv/internal/middleware"
	"sg-console-srv/internal/snapshot/usecase"
	"sg-console-srv/pkg/log"
	"sg-console-srv/pkg/scope"
	"sg-console-srv/pkg/sgsclient"
	"sg-console-srv/pkg/sgsclient/sgsfake"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(sgs *sgsfake.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	if sgs.Project == "" {
		sgs.Project = "p1"
	}
	lookupUC := lookupUsecase.New(l, sgs, nil)
	uc := usecase.New(l, sgs, lookupUC, actionlogUsecase.New(l, nil, nil, nil, actionlogUsecase.Config{}))

	r := gin.New()
	r.Use(middleware.Recovery(l))
	New(l, uc, 20).RegisterRoutes(r.Group(""), middleware.New(l, lookupUC))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(scope.HeaderAuthToken, "tok")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestList_VolumeNames(t *testing.T) {
	sgs := &sgsfake.Client{
		Volumes:   []sgsclient.Volume{{ID: "vol-a", Name: "data"}},
		Snapshots: []sgsclient.Snapshot{{ID: "snap-1", Name: "s", Size: 1, Status: "available", VolumeID: "vol-a", CreatedAt: "2026-02-01T08:00:00"}},
	}

	w := do(newTestRouter(sgs), http.MethodGet, "/api/v1/snapshots", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"error_code":0,"message":"Success","data":{
		"items":[{"id":"snap-1","name":"s","size":1,"status":"available","volume_id":"vol-a","volume_name":"data","created_at":"2026-02-01T08:00:00Z"}],
		"has_more":false,"has_prev":false
	}}`, w.Body.String())
}

func TestList_Degraded(t *testing.T) {
	sgs := &sgsfake.Client{ListErr: &sgsclient.APIError{StatusCode: http.StatusInternalServerError, Message: "boom"}}

	w := do(newTestRouter(sgs), http.MethodGet, "/api/v1/snapshots", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"error_code":503,"message":"Unable to retrieve volume snapshots.","data":{"items":[],"has_more":false,"has_prev":false}}`, w.Body.String())
}

func TestCreate(t *testing.T) {
	sgs := &sgsfake.Client{Volumes: []sgsclient.Volume{{ID: "vol-a"}}}
	r := newTestRouter(sgs)

	w := do(r, http.MethodPost, "/api/v1/volumes/vol-a/snapshots", `{"name":"nightly"}`)
	require.Equal(t, http.StatusOK, w.Code)
	calls := sgs.CallsTo("CreateSnapshot")
	require.Len(t, calls, 1)
	assert.Equal(t, sgsclient.CreateSnapshotRequest{VolumeID: "vol-a", Name: "nightly"}, calls[0].Body)

	w = do(r, http.MethodPost, "/api/v1/volumes/vol-a/snapshots", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDelete_NotFound(t *testing.T) {
	w := do(newTestRouter(&sgsfake.Client{}), http.MethodDelete, "/api/v1/snapshots/snap-x", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	actionlogUsecase "sg-console-srv/internal/actionlog/usecase"
	"sg-console-srv/internal/checkpoint/usecase"
	lookupUsecase "sg-console-srv/internal/lookup/usecase"
	"sg-console-srv/internal/middleware"
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

func newFake() *sgsfake.Client {
	return &sgsfake.Client{
		Replications: []sgsclient.Replication{{ID: "rep-a", Name: "dr"}},
		Checkpoints:  []sgsclient.Checkpoint{{ID: "cp-a", Name: "first", Status: "available", ReplicationID: "rep-a"}},
	}
}

func TestList(t *testing.T) {
	w := do(newTestRouter(newFake()), http.MethodGet, "/api/v1/checkpoints", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"error_code":0,"message":"Success","data":{
		"items":[{"id":"cp-a","name":"first","status":"available","replication_id":"rep-a","replication_name":"dr","created_at":"0001-01-01T00:00:00Z"}],
		"has_more":false,"has_prev":false
	}}`, w.Body.String())
}

func TestList_Degraded(t *testing.T) {
	sgs := newFake()
	sgs.ListErr = &sgsclient.APIError{StatusCode: http.StatusInternalServerError, Message: "down"}

	w := do(newTestRouter(sgs), http.MethodGet, "/api/v1/checkpoints", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Unable to retrieve checkpoints.")
}

func TestCreate(t *testing.T) {
	sgs := newFake()
	r := newTestRouter(sgs)

	w := do(r, http.MethodPost, "/api/v1/replications/rep-a/checkpoints", `{"name":"nightly"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sgsclient.CreateCheckpointRequest{ReplicationID: "rep-a", Name: "nightly"}, sgs.CallsTo("CreateCheckpoint")[0].Body)

	w = do(r, http.MethodPost, "/api/v1/replications/rep-a/checkpoints", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRollback(t *testing.T) {
	sgs := newFake()
	r := newTestRouter(sgs)

	w := do(r, http.MethodPost, "/api/v1/checkpoints/cp-a/rollback", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, sgs.CallsTo("RollbackCheckpoint"), 1)

	w = do(r, http.MethodPost, "/api/v1/checkpoints/cp-x/rollback", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Checkpoint not found")
}

func TestGet(t *testing.T) {
	w := do(newTestRouter(newFake()), http.MethodGet, "/api/v1/checkpoints/cp-a", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"replication_name":"dr"`)
}

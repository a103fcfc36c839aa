package httpserver

import (
	"context"
	"net/http"

	"sg-console-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HealthMessage = "Storage gateway console API"
	HealthVersion = "1.0.0"
	ServiceName   = "sg-console-srv"
)

const (
	depConnected   = "connected"
	depUnavailable = "unavailable"
	depDisabled    = "disabled"
)

type healthResp struct {
	Status       string            `json:"status"`
	Message      string            `json:"message"`
	Version      string            `json:"version"`
	Service      string            `json:"service"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
	Error        string            `json:"error,omitempty"`
}

func newHealthResp(status string) healthResp {
	return healthResp{
		Status:  status,
		Message: HealthMessage,
		Version: HealthVersion,
		Service: ServiceName,
	}
}

// dependency is pinged by readyCheck. Optional dependencies are reported but never fail
// readiness; a nil ping means the dependency is not configured.
type dependency struct {
	name     string
	optional bool
	ping     func(ctx context.Context) error
}

func (srv *HTTPServer) dependencies() []dependency {
	deps := []dependency{
		{name: "postgres", ping: srv.postgresDB.PingContext},
		{name: "redis", ping: srv.redisClient.Ping},
		{name: "object_storage", optional: true},
	}
	if srv.minioClient != nil {
		deps[2].ping = srv.minioClient.HealthCheck
	}
	return deps
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newHealthResp("healthy"))
}

// readyCheck reports whether the action log database and the lookup cache are reachable.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 503 {object} healthResp
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	resp, ok := checkDependencies(c.Request.Context(), srv.dependencies())
	if !ok {
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	response.OK(c, resp)
}

func checkDependencies(ctx context.Context, deps []dependency) (healthResp, bool) {
	resp := newHealthResp("ready")
	resp.Dependencies = make(map[string]string, len(deps))

	for _, d := range deps {
		if d.ping == nil {
			resp.Dependencies[d.name] = depDisabled
			continue
		}
		if err := d.ping(ctx); err != nil {
			resp.Dependencies[d.name] = depUnavailable
			if !d.optional {
				resp.Status = "not ready"
				resp.Error = d.name + ": " + err.Error()
				return resp, false
			}
			continue
		}
		resp.Dependencies[d.name] = depConnected
	}
	return resp, true
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newHealthResp("alive"))
}

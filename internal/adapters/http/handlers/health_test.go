package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/plazasales/storefront/internal/mocks"
	"github.com/plazasales/storefront/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func opsEngine(h *HealthHandler) *gin.Engine {
	engine := gin.New()
	h.RegisterRoutes(engine.Group("/-"))

	return engine
}

func probe(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	return w
}

func TestNewBuildInfo(t *testing.T) {
	bi := NewBuildInfo("1.4.0", "abc123", "2026-03-01T10:00:00Z")

	assert.Equal(t, "1.4.0", bi.Version)
	assert.Equal(t, "abc123", bi.Commit)
	assert.Equal(t, "2026-03-01T10:00:00Z", bi.BuildTime)
	assert.Equal(t, runtime.Version(), bi.GoVersion)

	assert.NotEmpty(t, NewBuildInfo("dev", "none", "").Commit)
}

func TestHealthHandler_Liveness(t *testing.T) {
	w := probe(opsEngine(NewHealthHandler(mocks.NewMockHealthRegistry(t), BuildInfo{})), "/-/live")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name   string
		result *ports.HealthResult
		code   int
		status string
	}{
		{
			name: "backend and store healthy",
			result: &ports.HealthResult{
				Status: ports.HealthStatusHealthy,
				Checks: map[string]*ports.CheckResult{
					"backend-api":   {Status: ports.HealthStatusHealthy},
					"visitor-store": {Status: ports.HealthStatusHealthy},
				},
			},
			code:   http.StatusOK,
			status: "healthy",
		},
		{
			name: "attachment storage down degrades",
			result: &ports.HealthResult{
				Status: ports.HealthStatusDegraded,
				Checks: map[string]*ports.CheckResult{
					"backend-api": {Status: ports.HealthStatusHealthy},
					"attachments": {Status: ports.HealthStatusUnhealthy, Optional: true, Message: "dial tcp: refused"},
				},
			},
			code:   http.StatusOK,
			status: "degraded",
		},
		{
			name: "backend down",
			result: &ports.HealthResult{
				Status: ports.HealthStatusUnhealthy,
				Checks: map[string]*ports.CheckResult{
					"backend-api": {Status: ports.HealthStatusUnhealthy, Message: "circuit open"},
				},
			},
			code:   http.StatusServiceUnavailable,
			status: "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.result)

			w := probe(opsEngine(NewHealthHandler(registry, BuildInfo{})), "/-/ready")
			require.Equal(t, tt.code, w.Code)

			var resp probeResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.status, resp.Status)
			assert.Len(t, resp.Checks, len(tt.result.Checks))
		})
	}

	t.Run("without a registry", func(t *testing.T) {
		w := probe(opsEngine(NewHealthHandler(nil, BuildInfo{})), "/-/ready")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	})
}

func TestHealthHandler_Build(t *testing.T) {
	build := BuildInfo{Version: "1.4.0", Commit: "def456", BuildTime: "2026-03-01T12:00:00Z", GoVersion: "go1.25.7"}

	w := probe(opsEngine(NewHealthHandler(nil, build)), "/-/build")
	require.Equal(t, http.StatusOK, w.Code)

	var resp BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, build, resp)
}

func TestHealthHandler_Metrics(t *testing.T) {
	w := probe(opsEngine(NewHealthHandler(nil, BuildInfo{})), "/-/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

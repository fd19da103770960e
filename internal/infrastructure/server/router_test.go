package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/server"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func newRouter(checks map[string]server.HealthCheck) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		SessionAuth:  middleware.NewSessionAuth(auth.NewJWTService("test-secret", time.Hour)),
		HealthChecks: checks,
		Logger:       zap.NewNop(),
	}).Engine()
}

func getHealth(t *testing.T, engine *gin.Engine) (int, healthResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body healthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHealth(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("all checks up", func(t *testing.T) {
		code, body := getHealth(t, newRouter(map[string]server.HealthCheck{"postgres": up, "redis": up}))

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", body.Status)
		assert.Equal(t, map[string]string{"postgres": "up", "redis": "up"}, body.Checks)
	})

	t.Run("one check down", func(t *testing.T) {
		code, body := getHealth(t, newRouter(map[string]server.HealthCheck{"postgres": up, "redis": down}))

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "degraded", body.Status)
		assert.Equal(t, "down", body.Checks["redis"])
	})

	t.Run("no checks", func(t *testing.T) {
		code, body := getHealth(t, newRouter(nil))

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", body.Status)
	})
}

func TestSessionRoutesRequireToken(t *testing.T) {
	engine := newRouter(nil)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/0b7e6c1e-3f0a-4c47-9d4e-52b1f0f3a001", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

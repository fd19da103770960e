package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "photostrip")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "photostrip")
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("S3_BUCKET", "strips")
	t.Setenv("S3_ACCESS_KEY_ID", "key")
	t.Setenv("S3_SECRET_ACCESS_KEY", "secret")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, int64(10<<20), cfg.Server.MaxUploadSize)
		assert.Equal(t, 1200, cfg.Render.BaseWidth)
		assert.Equal(t, 400, cfg.Render.PreviewWidth)
		assert.Equal(t, "gstudio", cfg.Render.ExportSlug)
		assert.Equal(t, []int{3, 5, 10}, cfg.Capture.Countdowns)
		assert.Equal(t, time.Second, cfg.Capture.TickInterval)
		assert.Equal(t, "redis", cfg.Session.Store)
		assert.Equal(t, 24*time.Hour, cfg.JWT.SessionTokenTTL)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
		assert.Equal(t, 20, cfg.Redis.PoolSize)
		assert.Equal(t, 2*time.Second, cfg.Redis.OpTimeout)
	})

	t.Run("overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("RENDER_BASE_WIDTH", "1500")
		t.Setenv("CAPTURE_COUNTDOWNS", "3,10")
		t.Setenv("SESSION_STORE", "memory")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, 1500, cfg.Render.BaseWidth)
		assert.Equal(t, []int{3, 10}, cfg.Capture.Countdowns)
		assert.Equal(t, "memory", cfg.Session.Store)
	})

	t.Run("missing required", func(t *testing.T) {
		// Setenv registers the restore; Unsetenv makes the keys absent.
		t.Setenv("JWT_SECRET_KEY", "")
		t.Setenv("DB_USER", "")
		require.NoError(t, os.Unsetenv("JWT_SECRET_KEY"))
		require.NoError(t, os.Unsetenv("DB_USER"))

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		tests := []struct {
			name  string
			key   string
			value string
		}{
			{"unknown session store", "SESSION_STORE", "etcd"},
			{"zero base width", "RENDER_BASE_WIDTH", "0"},
			{"negative countdown", "CAPTURE_COUNTDOWNS", "3,-1"},
			{"jpeg quality too high", "CAPTURE_JPEG_QUALITY", "101"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				setRequired(t)
				t.Setenv(tt.key, tt.value)

				_, err := config.Load()
				require.Error(t, err)
				assert.Contains(t, err.Error(), "validating config")
			})
		}
	})
}

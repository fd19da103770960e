package observability_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/observability"
)

func TestNewLogger(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		logger, err := observability.NewLogger(config.LogConfig{Level: "warn", Format: "json"}, "production")
		require.NoError(t, err)

		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("console", func(t *testing.T) {
		logger, err := observability.NewLogger(config.LogConfig{Level: "debug", Format: "console"}, "development")
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := observability.NewLogger(config.LogConfig{Level: "loud", Format: "json"}, "production")
		assert.Error(t, err)
	})
}

func TestSession(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	id := uuid.New()

	observability.Session(zap.New(core), id).Info("camera opened")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, id.String(), logs.All()[0].ContextMap()["session_id"])
}

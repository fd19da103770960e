package database_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/database"
)

func TestPoolConfig(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:            "db.internal",
		Port:            5433,
		User:            "booth",
		Password:        "secret",
		Name:            "photostrip",
		SSLMode:         "disable",
		MaxOpenConns:    4,
		MaxIdleConns:    10,
		ConnMaxLifetime: 5 * time.Minute,
	}

	poolCfg, err := database.PoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", poolCfg.ConnConfig.Host)
	assert.Equal(t, uint16(5433), poolCfg.ConnConfig.Port)
	assert.Equal(t, "photostrip", poolCfg.ConnConfig.Database)
	assert.Equal(t, int32(4), poolCfg.MaxConns)
	assert.Equal(t, int32(4), poolCfg.MinConns, "idle connections are capped by the pool size")
	assert.Equal(t, 5*time.Minute, poolCfg.MaxConnLifetime)
	assert.Equal(t, "photostrip", poolCfg.ConnConfig.RuntimeParams["application_name"])
}

package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Search.CacheEnabled)
	assert.Equal(t, 5*time.Minute, cfg.Search.CacheTTL)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("STORAGE_DRIVER", " Memory ")
	v.Set("SEARCH_CACHE_TTL", "not-a-duration")
	v.Set("ALLOWED_ORIGINS", "http://localhost:3000, ,https://example.com")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, 5*time.Minute, cfg.Search.CacheTTL)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.CORS.AllowedOrigins)
}

func TestFromViperRejectsUnknownStorage(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("STORAGE_DRIVER", "sqlite")

	_, err := fromViper(v)
	assert.Error(t, err)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDev, cfg.AppEnv)
	assert.Equal(t, "hockeyhub", cfg.ServiceName)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Second, cfg.SportsAPITimeout)
	assert.Equal(t, 3, cfg.SportsAPIMaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.PipelineItemDelay)
	assert.Equal(t, 2*time.Second, cfg.PipelineBatchDelay)
	assert.Equal(t, time.Hour, cfg.ImagePresignTTL)
	assert.Empty(t, cfg.SeasonIDs)
	assert.False(t, cfg.TextToSQLEnabled)
	assert.False(t, cfg.UptraceEnabled)
	assert.False(t, cfg.PyroscopeEnabled)
	assert.Equal(t, 15*time.Second, cfg.PyroscopeUploadRate)
}

func TestLoadRequiresDSNWhenUptraceEnabled(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UPTRACE_DSN")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("SPORTS_API_TIMEOUT", "5s")
	t.Setenv("SPORTS_API_MAX_RETRIES", "5")
	t.Setenv("SEASON_IDS", "200651, 201073")
	t.Setenv("IMAGE_WORKERS", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.AppEnv)
	assert.Equal(t, 5*time.Second, cfg.SportsAPITimeout)
	assert.Equal(t, 5, cfg.SportsAPIMaxRetries)
	assert.Equal(t, []int64{200651, 201073}, cfg.SeasonIDs)
	assert.Equal(t, 8, cfg.ImageWorkers)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"bad app env", "APP_ENV", "production"},
		{"bad timeout", "SPORTS_API_TIMEOUT", "soon"},
		{"zero retries", "SPORTS_API_MAX_RETRIES", "0"},
		{"bad season id", "SEASON_IDS", "200651,abc"},
		{"negative season id", "SEASON_IDS", "-1"},
		{"zero rate", "PIPELINE_RATE_LIMIT", "0"},
		{"bad ssl flag", "MINIO_USE_SSL", "maybe"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRequiresAPIKeyWhenTextToSQLEnabled(t *testing.T) {
	t.Setenv("TEXT_TO_SQL_ENABLED", "true")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("TEXT_TO_SQL_API_KEY", "sk-test")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.TextToSQLEnabled)
}

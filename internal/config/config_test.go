package config

import (
	"testing"

	"github.com/RMahshie/bamodel/internal/response"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test-defaults")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "test-defaults", cfg.Server.Env)
	assert.Equal(t, zerolog.InfoLevel, cfg.Server.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 20.0, cfg.Grid.Start)
	assert.Equal(t, 20000.0, cfg.Grid.Stop)
	assert.Equal(t, 500, cfg.Grid.Points)
	assert.Equal(t, "linear", cfg.Grid.Scale)
	assert.False(t, cfg.AWS.ExportEnabled())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test-overrides")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("GRID_POINTS", "64")
	t.Setenv("GRID_SCALE", "log")
	t.Setenv("S3_BUCKET", "curves")
	t.Setenv("S3_ENDPOINT", "localhost:9000")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, zerolog.DebugLevel, cfg.Server.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 64, cfg.Grid.Points)
	assert.Equal(t, "log", cfg.Grid.Scale)
	assert.True(t, cfg.AWS.ExportEnabled())
	assert.Equal(t, "localhost:9000", cfg.AWS.S3Endpoint)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test-invalid")

	t.Run("log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")
		_, err := load(viper.New())
		assert.Error(t, err)
	})

	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "negative grid points", env: map[string]string{"GRID_POINTS": "-1"}},
		{name: "grid points over limit", env: map[string]string{"GRID_POINTS": "3000000"}},
		{name: "unknown grid scale", env: map[string]string{"GRID_SCALE": "octave"}},
		{name: "log grid from zero", env: map[string]string{"GRID_SCALE": "log", "GRID_START": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := load(viper.New())
			assert.ErrorIs(t, err, response.ErrInvalidGrid)
		})
	}
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("HOST", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("WS_ENABLED", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "*", cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.WebSocket.Enabled)
	assert.Less(t, cfg.WebSocket.PingPeriod, cfg.WebSocket.PongWait)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("WS_ENABLED", "false")
	t.Setenv("WS_MAX_CLIENTS", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Addr())
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.WebSocket.Enabled)
	assert.Equal(t, 3, cfg.WebSocket.MaxClients)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric port", "PORT", "http"},
		{"port out of range", "PORT", "70000"},
		{"bad duration", "SERVER_READ_TIMEOUT", "soon"},
		{"bad pong wait", "WS_PONG_WAIT", "1 minute"},
		{"pong wait too short for ping period", "WS_PONG_WAIT", "1ns"},
		{"zero pong wait", "WS_PONG_WAIT", "0s"},
		{"negative pong wait", "WS_PONG_WAIT", "-5s"},
		{"zero read timeout", "SERVER_READ_TIMEOUT", "0s"},
		{"negative shutdown timeout", "SHUTDOWN_TIMEOUT", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGetEnvAsIntFallsBack(t *testing.T) {
	t.Setenv("WS_MAX_CLIENTS", "many")
	assert.Equal(t, 100, getEnvAsInt("WS_MAX_CLIENTS", 100))
}

func TestLoad_PingPeriodAlwaysPositive(t *testing.T) {
	t.Setenv("WS_PONG_WAIT", "10ns")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Greater(t, cfg.WebSocket.PingPeriod, time.Duration(0))
	assert.Less(t, cfg.WebSocket.PingPeriod, cfg.WebSocket.PongWait)
}

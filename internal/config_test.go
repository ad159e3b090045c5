package internal

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"ENV", "LOG_LEVEL", "INVENTORY_SOURCE", "DATABASE_URL", "SNAPSHOT_PATH",
		"NATS_URL", "NATS_QUEUE_GROUP", "METRICS_ADDR",
		"REQUEST_TIMEOUT_MS", "INVENTORY_CACHE_TTL_SECONDS", "SENTRY_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, SourcePostgres, cfg.Source)
	assert.NotEmpty(t, cfg.DatabaseUrl)
	assert.Equal(t, "nats://127.0.0.1:4222", cfg.NATS.URL)
	assert.Equal(t, "consign", cfg.NATS.QueueGroup)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.InventoryCacheTTL)
	assert.False(t, cfg.Sentry.Enabled)
	assert.Equal(t, 1.0, cfg.Sentry.SampleRate)
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("INVENTORY_SOURCE", "snapshot")
	t.Setenv("SNAPSHOT_PATH", "/data/snapshot.json")
	t.Setenv("REQUEST_TIMEOUT_MS", "250")
	t.Setenv("INVENTORY_CACHE_TTL_SECONDS", "0")
	t.Setenv("SENTRY_ENABLED", "true")
	t.Setenv("SENTRY_SAMPLE_RATE", "0.25")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, SourceSnapshot, cfg.Source)
	assert.Equal(t, "/data/snapshot.json", cfg.SnapshotPath)
	assert.Equal(t, 250*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, time.Duration(0), cfg.InventoryCacheTTL, "zero disables the cache")
	assert.True(t, cfg.Sentry.Enabled)
	assert.Equal(t, 0.25, cfg.Sentry.SampleRate)
}

func TestNewConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("ENV", "staging")
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("INVENTORY_SOURCE", "")
	t.Setenv("REQUEST_TIMEOUT_MS", "-5")
	t.Setenv("INVENTORY_CACHE_TTL_SECONDS", "-1")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.InventoryCacheTTL)
}

func TestNewConfig_SourceErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "snapshot without path", source: "snapshot", want: "SNAPSHOT_PATH"},
		{name: "unknown source", source: "redis", want: "unknown INVENTORY_SOURCE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("INVENTORY_SOURCE", tt.source)
			t.Setenv("SNAPSHOT_PATH", "")

			_, err := NewConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "prod", "warn")

	logger.Info("dropped")
	logger.Warn("kept", "supplier", "WH1")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "WH1", entry["supplier"])
	assert.Equal(t, "consign", entry["service"])

	buf.Reset()
	NewLogger(&buf, "dev", "debug").Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

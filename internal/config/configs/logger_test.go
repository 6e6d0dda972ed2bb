package configs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Logger{Level: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Logger{Level: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Logger{Level: "verbose"}.SlogLevel())
}

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	Logger{Level: "warn", Format: "json"}.New(&buf).Info("dropped")
	assert.Zero(t, buf.Len())

	Logger{Level: "info", Format: "JSON"}.New(&buf).Info("checkout", slog.String("state", "idle"))
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "checkout", line["msg"])
	assert.Equal(t, "idle", line["state"])
}

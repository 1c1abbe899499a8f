package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "clinicdesk", "info")

	logger.Debug("hidden")
	logger.Info("store operation failed", "entity", "customer", "id", 7)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "clinicdesk", entry["service"])
	assert.Equal(t, "customer", entry["entity"])
	assert.Equal(t, float64(7), entry["id"])
}

func TestOrDefault(t *testing.T) {
	assert.NotNil(t, OrDefault(nil))

	logger := slog.Default()
	assert.Same(t, logger, OrDefault(logger))
}

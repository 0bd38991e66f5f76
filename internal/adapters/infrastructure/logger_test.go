package infrastructure

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"flosscast.app/internal/ports"
	"flosscast.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogLoggerAdapter(slog.New(handler))

	logger.Debug("Forecast cache miss", ports.F("key", "50.1:8.6"))
	logger.Info("Forecast cached", ports.F("days", 7))
	logger.Warn("Forecast download failed", ports.F("error", errors.NewNetworkError("down", nil)))
	logger.Error("Unusable forecast cache document")

	var entries []map[string]interface{}
	decoder := json.NewDecoder(&buf)
	for decoder.More() {
		var entry map[string]interface{}
		require.NoError(t, decoder.Decode(&entry))
		entries = append(entries, entry)
	}
	require.Len(t, entries, 4)

	assert.Equal(t, "DEBUG", entries[0]["level"])
	assert.Equal(t, "50.1:8.6", entries[0]["key"])
	assert.Equal(t, "INFO", entries[1]["level"])
	assert.Equal(t, float64(7), entries[1]["days"])
	assert.Equal(t, "WARN", entries[2]["level"])
	assert.Equal(t, "NETWORK_ERROR: down", entries[2]["error"])
	assert.Equal(t, "ERROR", entries[3]["level"])
	assert.Equal(t, "Unusable forecast cache document", entries[3]["msg"])
}

func TestSlogLoggerAdapter_ZeroValueUsesDefault(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	logger := &SlogLoggerAdapter{}
	logger.Info("hello", ports.F("dir", "data"))

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "dir=data")
}

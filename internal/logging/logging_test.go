package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "json", "info")

	logger.Debug("hidden")
	logger.Info("login submitted", "email", "a@b.c")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "only the info line should be written")
	assert.Equal(t, "login submitted", entry["msg"])
	assert.Equal(t, "a@b.c", entry["email"])
}

func TestNewLogger_TextIncludesSource(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "", "debug")

	logger.Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "source=")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Production(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Output: &buf})

	slog.Debug("hidden")
	slog.Info("post rendered", "slug", "jwt")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "post rendered", entry["msg"])
	assert.Equal(t, "jwt", entry["slug"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestInit_Development(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Development: true, Output: &buf})

	Log.Debug("visible", "key", "value")
	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "key=value")
}

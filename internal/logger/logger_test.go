package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyHandlerWritesAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "pretty", slog.LevelInfo)

	log.With("run", 7).Info("renamed file", "from", "файл.txt", "to", "fail.txt")

	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "renamed file")
	assert.Contains(t, out, "run"+reset+"=7")
	assert.Contains(t, out, "from"+reset+"=файл.txt")
	assert.Contains(t, out, "to"+reset+"=fail.txt")
}

func TestPrettyHandlerFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "", slog.LevelWarn)

	log.Info("hidden")
	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Error("shown")
	assert.Contains(t, buf.String(), "ERR")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "json", slog.LevelDebug)

	log.Debug("skipped file", "name", "photo.jpg")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "skipped file", rec["msg"])
	assert.Equal(t, "photo.jpg", rec["name"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

package logging

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultConfigIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	InitializeWriter(DefaultConfig(), &buf)
	defer InitializeWriter(DefaultConfig(), &bytes.Buffer{})

	Debug("hidden")
	Info("hidden")
	Warn("shown", zap.String("field", "value"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "value")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	InitializeWriter(Config{Level: "debug", Format: "json"}, &buf)
	defer InitializeWriter(DefaultConfig(), &bytes.Buffer{})

	Debug("size converted", zap.Float64("bits", 8))

	assert.Contains(t, buf.String(), `"msg":"size converted"`)
	assert.Contains(t, buf.String(), `"bits":8`)
}

func TestInvalidLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	InitializeWriter(Config{Level: "chatty"}, &buf)
	defer InitializeWriter(DefaultConfig(), &bytes.Buffer{})

	Info("hidden")
	Error("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitializeFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bwcalc.log")
	require.NoError(t, Initialize(Config{Level: "info", Format: "json", Output: path}))
	defer InitializeWriter(DefaultConfig(), &bytes.Buffer{})

	Info("written")
	Sync()

	assert.FileExists(t, path)
}

func TestValidLevel(t *testing.T) {
	assert.True(t, ValidLevel("debug"))
	assert.True(t, ValidLevel("warn"))
	assert.False(t, ValidLevel("loud"))
}

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitRejectsInvalidLevel(t *testing.T) {
	assert.Error(t, Init("loud", "json", "stdout"))
}

func TestInitWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, Init("info", "json", path))

	Info("pipeline ready", zap.String("component", "engine"))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"pipeline ready"`)
	assert.Contains(t, string(data), `"component":"engine"`)
}

func TestInitLevelFiltersDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, Init("warn", "json", path))

	Debug("chatty")
	Warn("important")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "chatty")
	assert.Contains(t, string(data), "important")
}

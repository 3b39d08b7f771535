package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAppendsToFileAndMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "meshview.txt")
	l := New(path)
	l.Log("loaded bunny.ply")
	l.Logf("backend=%s", "image")

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "loaded bunny.ply")
	assert.Contains(t, lines[1], "backend=image")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "loaded bunny.ply")
}

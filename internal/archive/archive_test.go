package archive

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func TestUnzipAndFindModelFiles(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "bundle.zip")
	writeZip(t, zipPath, map[string]string{
		"bunny/bunny.ply":   "ply",
		"bunny/texture.png": "png",
		"readme.txt":        "hi",
	})

	dest := filepath.Join(dir, "out")
	extracted, err := Unzip(zipPath, dest)
	require.NoError(t, err)
	assert.Len(t, extracted, 3)

	models, err := FindModelFiles(dest, dest, []string{".ply", ".obj"})
	require.NoError(t, err)
	assert.Equal(t, []string{"bunny/bunny.ply"}, models)
}

func TestUnzipSkipsPathEscape(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "evil.zip")
	writeZip(t, zipPath, map[string]string{
		"../escape.obj": "nope",
		"ok.obj":        "fine",
	})

	dest := filepath.Join(dir, "out")
	extracted, err := Unzip(zipPath, dest)
	require.NoError(t, err)
	assert.Len(t, extracted, 1)
	assert.Equal(t, "ok.obj", filepath.Base(extracted[0]))
	_, err = os.Stat(filepath.Join(dir, "escape.obj"))
	assert.True(t, os.IsNotExist(err))
}

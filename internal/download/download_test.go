package download

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadNamesFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("solid test"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	saved, err := Download(srv.URL+"/models/cube.stl", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cube.stl"), saved)

	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Equal(t, "solid test", string(data))
}

func TestDownloadNamesFromContentDisposition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="bunny.ply"`)
		_, _ = w.Write([]byte("ply"))
	}))
	defer srv.Close()

	saved, err := Download(srv.URL+"/release/latest", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "bunny.ply", filepath.Base(saved))
}

func TestDownloadExtensionFromContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "model/gltf-binary")
		_, _ = w.Write([]byte("glTF"))
	}))
	defer srv.Close()

	saved, err := Download(srv.URL+"/asset", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "asset.glb", filepath.Base(saved))
}

func TestDownloadHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := Download(srv.URL+"/gone.obj", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

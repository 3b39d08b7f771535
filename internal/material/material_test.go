package material

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinFactorsInRange(t *testing.T) {
	tbl := Builtin()
	for _, name := range tbl.Names() {
		p, err := tbl.Lookup(name)
		require.NoError(t, err)
		for i, c := range p.Color {
			assert.GreaterOrEqual(t, c, 0.0, "%s color[%d]", name, i)
			assert.LessOrEqual(t, c, 1.0, "%s color[%d]", name, i)
		}
		assert.GreaterOrEqual(t, p.Metallic, 0.0, name)
		assert.LessOrEqual(t, p.Metallic, 1.0, name)
		assert.GreaterOrEqual(t, p.Roughness, 0.0, name)
		assert.LessOrEqual(t, p.Roughness, 1.0, name)
	}
}

func TestLookupDefault(t *testing.T) {
	tbl := Builtin()
	p, err := tbl.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, DefaultName, p.Name)
	assert.Equal(t, [3]float64{0.70, 0.70, 0.72}, p.Color)
}

func TestLookupUnknownFails(t *testing.T) {
	tbl := Builtin()
	_, err := tbl.Lookup("vibranium")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vibranium")
	assert.Contains(t, err.Error(), "iron", "error should list known presets")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	def := "name: brass\ncolor: [0.89, 0.72, 0.32]\nmetallic: 1\nroughness: 0.45\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brass.yaml"), []byte(def), 0644))

	tbl := Builtin()
	added, err := tbl.LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	p, err := tbl.Lookup("brass")
	require.NoError(t, err)
	assert.Equal(t, 0.45, p.Roughness)
}

func TestLoadDirNameFromFileStem(t *testing.T) {
	dir := t.TempDir()
	def := "color: [0.2, 0.2, 0.9]\nroughness: 0.3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cobalt.yaml"), []byte(def), 0644))

	tbl := Builtin()
	_, err := tbl.LoadDir(dir)
	require.NoError(t, err)
	_, err = tbl.Lookup("cobalt")
	assert.NoError(t, err)
}

func TestLoadDirRejectsBuiltinOverride(t *testing.T) {
	dir := t.TempDir()
	def := "name: iron\ncolor: [1, 0, 0]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "iron.yaml"), []byte(def), 0644))

	tbl := Builtin()
	_, err := tbl.LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "iron")
}

func TestLoadDirRejectsOutOfRange(t *testing.T) {
	dir := t.TempDir()
	def := "name: neon\ncolor: [2, 0, 0]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "neon.yaml"), []byte(def), 0644))

	tbl := Builtin()
	_, err := tbl.LoadDir(dir)
	assert.Error(t, err)
}

func TestLoadDirMissingIsNotError(t *testing.T) {
	tbl := Builtin()
	added, err := tbl.LoadDir(filepath.Join(t.TempDir(), "nope"))
	assert.NoError(t, err)
	assert.Zero(t, added)
}

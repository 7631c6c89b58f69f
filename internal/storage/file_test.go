package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.geojson")

	require.NoError(t, WriteFile(path, []byte(`{"type":"FeatureCollection","features":[]}`)))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(got))

	t.Run("overwrites", func(t *testing.T) {
		require.NoError(t, WriteFile(path, []byte(`{}`)))
		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(got))
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "out.geojson", entries[0].Name())
	})
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.geojson")
	err := WriteFile(path, []byte(`{}`))
	assert.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteFile_TargetIsDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.geojson")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0o644))

	assert.Error(t, WriteFile(target, []byte(`{}`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file is cleaned up after a failed rename")
}

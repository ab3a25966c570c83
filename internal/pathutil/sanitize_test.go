package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeOutputPath(t *testing.T) {
	t.Run("existing regular file accepted", func(t *testing.T) {
		tmpDir := t.TempDir()
		target := filepath.Join(tmpDir, "swagger.json")
		require.NoError(t, os.WriteFile(target, []byte("{}"), 0o600))

		got, err := SanitizeOutputPath(target)
		require.NoError(t, err)
		assert.Equal(t, target, got)
	})

	t.Run("returns absolute path from relative", func(t *testing.T) {
		got, err := SanitizeOutputPath("swagger.json")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
	})

	t.Run("dot-dot components are cleaned", func(t *testing.T) {
		tmpDir := t.TempDir()
		got, err := SanitizeOutputPath(filepath.Join(tmpDir, "sub", "..", "out.yaml"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmpDir, "out.yaml"), got)
	})

	t.Run("new file in existing directory accepted", func(t *testing.T) {
		tmpDir := t.TempDir()
		newFile := filepath.Join(tmpDir, "newfile.yaml")

		got, err := SanitizeOutputPath(newFile)
		require.NoError(t, err)
		assert.Equal(t, newFile, got)
	})

	t.Run("symlink target rejected", func(t *testing.T) {
		tmpDir := t.TempDir()
		realFile := filepath.Join(tmpDir, "real.yaml")
		linkFile := filepath.Join(tmpDir, "link.yaml")

		require.NoError(t, os.WriteFile(realFile, []byte("test"), 0o600))
		require.NoError(t, os.Symlink(realFile, linkFile))

		_, err := SanitizeOutputPath(linkFile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "symlink")
	})

	t.Run("directory rejected", func(t *testing.T) {
		_, err := SanitizeOutputPath(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "directory")
	})
}

package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// SanitizeOutputPath validates and cleans the path a Swagger document will
// be written to. It resolves ".." components via filepath.Clean and
// filepath.Abs and rejects paths that resolve to symlinks. New files in
// existing directories are accepted. Returns the cleaned absolute path.
func SanitizeOutputPath(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("pathutil: refusing to write to symlink: %s", abs)
		}
		if info.IsDir() {
			return "", fmt.Errorf("pathutil: output path is a directory: %s", abs)
		}
	case os.IsNotExist(err):
		// Will be created.
	default:
		return "", fmt.Errorf("pathutil: cannot stat path: %w", err)
	}

	return abs, nil
}

// Where: internal/infra/config/root.go
// What: Project root discovery.
// Why: Let the tool run from any subdirectory of a solution.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/layergen/internal/meta"
)

// ResolveProjectRoot searches upward from startDir for a directory holding a
// tool home or a solution file. When none is found startDir itself is used.
func ResolveProjectRoot(startDir string) (string, error) {
	start, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	if root, ok := findProjectRoot(start); ok {
		return root, nil
	}
	return start, nil
}

func findProjectRoot(dir string) (string, bool) {
	for {
		if info, err := os.Stat(filepath.Join(dir, meta.HomeDir)); err == nil && info.IsDir() {
			return dir, true
		}
		if hasSolutionFile(dir) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

func hasSolutionFile(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), meta.SolutionExt) {
			return true
		}
	}
	return false
}

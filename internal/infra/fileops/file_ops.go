// Where: internal/infra/fileops/file_ops.go
// What: Filesystem operations for generated sources and tool state.
// Why: Keep write permissions and overwrite behavior in one place.
package fileops

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, dirPerm)
}

// WriteFile creates missing parents and replaces any existing file at path.
func WriteFile(path, content string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if DirExists(path) {
		return fmt.Errorf("cannot overwrite directory %s", path)
	}
	return os.WriteFile(path, []byte(content), filePerm)
}

// WriteConfigFile writes through a temporary sibling and renames it into place.
func WriteConfigFile(path, content string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Materializer writes rendered artifacts to disk.
type Materializer struct{}

func (Materializer) Write(path, content string) error {
	return WriteFile(path, content)
}

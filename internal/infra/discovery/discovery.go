// Where: internal/infra/discovery/discovery.go
// What: Filesystem walks for entity sources, solution files and layer directories.
// Why: Keep directory traversal out of the pure extraction and matching rules.
package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/layergen/internal/domain/entity"
	"github.com/poruru/layergen/internal/meta"
)

var ErrDiscoveryIO = errors.New("discovery failed")

// DefaultSkipDirs are directory names never descended into.
var DefaultSkipDirs = []string{".git", "node_modules", "bin", "obj", meta.HomeDir}

// Walker enumerates files and directories under a root in lexical order.
type Walker struct {
	SkipDirs []string
}

// NewWalker returns a Walker that skips the defaults plus extra names.
func NewWalker(extra ...string) Walker {
	skip := append([]string{}, DefaultSkipDirs...)
	for _, name := range extra {
		if name = strings.TrimSpace(name); name != "" {
			skip = append(skip, name)
		}
	}
	return Walker{SkipDirs: skip}
}

// Files returns every file under root whose name ends with extension and whose
// root-relative slash path contains subpathFilter. An empty filter matches all.
func (w Walker) Files(root, subpathFilter, extension string) ([]string, error) {
	filter := strings.Trim(filepath.ToSlash(subpathFilter), "/")
	var files []string
	err := w.walk(root, func(path string, entry fs.DirEntry) {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), extension) {
			return
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return
		}
		if filter != "" && !strings.Contains(filepath.ToSlash(rel), filter) {
			return
		}
		files = append(files, path)
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Dirs returns every directory below root, excluding root itself.
func (w Walker) Dirs(root string) ([]string, error) {
	var dirs []string
	err := w.walk(root, func(path string, entry fs.DirEntry) {
		if entry.IsDir() && path != root {
			dirs = append(dirs, path)
		}
	})
	if err != nil {
		return nil, err
	}
	return dirs, nil
}

func (w Walker) walk(root string, visit func(string, fs.DirEntry)) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() && path != root && w.skip(entry.Name()) {
			return filepath.SkipDir
		}
		visit(path, entry)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: walk %s: %w", ErrDiscoveryIO, root, err)
	}
	return nil
}

func (w Walker) skip(name string) bool {
	for _, s := range w.SkipDirs {
		if s == name {
			return true
		}
	}
	return false
}

// DiscoverFiles walks root with the default skip list.
func DiscoverFiles(root, subpathFilter, extension string) ([]string, error) {
	return NewWalker().Files(root, subpathFilter, extension)
}

// DiscoverEntities reads every matching file and extracts its declarations.
// Any read failure aborts discovery without partial results.
func DiscoverEntities(root, subpathFilter, extension string, keywords []string) ([]entity.Descriptor, error) {
	return NewWalker().Entities(root, subpathFilter, extension, keywords)
}

func (w Walker) Entities(root, subpathFilter, extension string, keywords []string) ([]entity.Descriptor, error) {
	files, err := w.Files(root, subpathFilter, extension)
	if err != nil {
		return nil, err
	}
	var descriptors []entity.Descriptor
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrDiscoveryIO, file, err)
		}
		for _, name := range entity.ExtractNames(string(data), keywords...) {
			descriptors = append(descriptors, entity.Descriptor{Name: name, Source: file})
		}
	}
	return descriptors, nil
}

// DetectSolutionName returns the name of the first solution file under root,
// truncated at its first '.', or "" when there is none.
func DetectSolutionName(root string) (string, error) {
	files, err := DiscoverFiles(root, "", meta.SolutionExt)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", nil
	}
	name := filepath.Base(files[0])
	if i := strings.Index(name, "."); i >= 0 {
		name = name[:i]
	}
	return name, nil
}

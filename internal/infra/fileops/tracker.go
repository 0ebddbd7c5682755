// Where: internal/infra/fileops/tracker.go
// What: Writer decorator that classifies each write against the file on disk.
// Why: Report new, updated and unchanged files after a destructive run.
package fileops

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/poruru/layergen/internal/domain/change"
)

// ContentWriter is the write surface Tracker decorates.
type ContentWriter interface {
	Write(path, content string) error
}

// Tracker compares every target with its current content before delegating to Next.
// Kinds are recorded only for successful writes.
type Tracker struct {
	Next   ContentWriter
	Counts change.Counts
	kinds  map[string]change.Kind
}

// NewTracker wraps next.
func NewTracker(next ContentWriter) *Tracker {
	return &Tracker{Next: next, kinds: map[string]change.Kind{}}
}

func (t *Tracker) Write(path, content string) error {
	if t.Next == nil {
		return fmt.Errorf("tracker has no writer for %s", path)
	}
	before, err := ReadFile(path)
	existed := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) && !DirExists(path) {
		return fmt.Errorf("read existing %s: %w", path, err)
	}
	kind := change.Classify(existed, before, content)
	if err := t.Next.Write(path, content); err != nil {
		return err
	}
	if t.kinds == nil {
		t.kinds = map[string]change.Kind{}
	}
	t.kinds[path] = kind
	t.Counts.Record(kind)
	return nil
}

// Kind returns the classification recorded for path.
func (t *Tracker) Kind(path string) (change.Kind, bool) {
	kind, ok := t.kinds[path]
	return kind, ok
}

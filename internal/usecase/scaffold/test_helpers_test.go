package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/poruru/layergen/internal/domain/layout"
)

type fakeResolver struct {
	dirs  map[layout.Layer]string
	calls []layout.Layer
}

func newFakeResolver(root string) *fakeResolver {
	dirs := make(map[layout.Layer]string)
	for _, layer := range layout.Layers() {
		dirs[layer] = filepath.Join(root, filepath.FromSlash(string(layer)))
	}
	return &fakeResolver{dirs: dirs}
}

func (r *fakeResolver) Resolve(layer layout.Layer) (string, error) {
	r.calls = append(r.calls, layer)
	dir, ok := r.dirs[layer]
	if !ok {
		return "", fmt.Errorf("%w: %s", layout.ErrLayerNotFound, layer)
	}
	return dir, nil
}

type fakeInputs struct {
	group       string
	controller  string
	groupCalls  int
	controllers []string
}

func (in *fakeInputs) FeatureGroup() (string, error) {
	in.groupCalls++
	return in.group, nil
}

func (in *fakeInputs) Controller(featureGroup string) (string, error) {
	in.controllers = append(in.controllers, featureGroup)
	return in.controller, nil
}

var errDiskFull = errors.New("disk full")

// failingWriter succeeds for the first `allow` writes.
type failingWriter struct {
	Recorder
	allow int
}

func (w *failingWriter) Write(path, content string) error {
	if len(w.Files) >= w.allow {
		return errDiskFull
	}
	return w.Recorder.Write(path, content)
}

// Where: internal/infra/layout/resolver.go
// What: Directory resolver backed by a one-time walk of the project tree.
// Why: Feed the pure matching rules with real directories and cache the answers.
package layout

import (
	"go.uber.org/zap"

	domainlayout "github.com/poruru/layergen/internal/domain/layout"
	"github.com/poruru/layergen/internal/infra/discovery"
)

// Resolver finds layer directories for one project under one root.
type Resolver struct {
	Root     string
	Project  string
	Bindings domainlayout.Bindings
	Walker   discovery.Walker
	Logger   *zap.Logger

	dirs  []string
	ready bool
	cache map[domainlayout.Layer]string
}

// NewResolver constructs a Resolver. Nil bindings fall back to the defaults.
func NewResolver(
	root string,
	project string,
	bindings domainlayout.Bindings,
	walker discovery.Walker,
	logger *zap.Logger,
) *Resolver {
	if bindings == nil {
		bindings = domainlayout.DefaultBindings()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		Root:     root,
		Project:  project,
		Bindings: bindings,
		Walker:   walker,
		Logger:   logger,
		cache:    make(map[domainlayout.Layer]string),
	}
}

// Resolve returns the directory bound to layer. Successful lookups are cached
// so repeated calls return the same directory.
func (r *Resolver) Resolve(layer domainlayout.Layer) (string, error) {
	if dir, ok := r.cache[layer]; ok {
		return dir, nil
	}
	dirs, err := r.candidates()
	if err != nil {
		return "", err
	}
	key := r.Key(layer)
	rule := r.Bindings.Rule(layer)
	dir, err := domainlayout.FirstMatch(r.Root, dirs, key, rule)
	if err != nil {
		r.Logger.Debug("layer lookup failed", zap.String("key", key), zap.String("rule", string(rule)))
		return "", err
	}
	r.Logger.Debug("layer bound", zap.String("key", key), zap.String("rule", string(rule)), zap.String("dir", dir))
	if r.cache == nil {
		r.cache = make(map[domainlayout.Layer]string)
	}
	r.cache[layer] = dir
	return dir, nil
}

// Key returns the dotted lookup key for layer.
func (r *Resolver) Key(layer domainlayout.Layer) string {
	return domainlayout.Key(r.Project, layer)
}

func (r *Resolver) candidates() ([]string, error) {
	if r.ready {
		return r.dirs, nil
	}
	dirs, err := r.Walker.Dirs(r.Root)
	if err != nil {
		return nil, err
	}
	r.dirs = dirs
	r.ready = true
	return dirs, nil
}

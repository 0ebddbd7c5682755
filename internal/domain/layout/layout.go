// Where: internal/domain/layout/layout.go
// What: Layer binding table and pure directory matching.
// Why: Replace hard-coded target paths with an explicit, testable convention lookup.
package layout

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrLayerNotFound is returned when no directory under the root matches a layer key.
var ErrLayerNotFound = errors.New("layer directory not found")

var errUnknownMatchRule = errors.New("unknown match rule")

// Layer is a logical layer label relative to the project name.
type Layer string

const (
	ApplicationRepositories Layer = "Application/Repositories"
	PersistenceRepositories Layer = "Persistence/Repositories"
	ApplicationServices     Layer = "Application/Services"
	PersistenceServices     Layer = "Persistence/Services"
	ApplicationFeatures     Layer = "Application/Features"
	WebAPIControllers       Layer = "WebAPI/Controllers"
	WebAPIDtos              Layer = "WebAPI/Dtos"
	WebAPIProfiles          Layer = "WebAPI/Profiles"
)

// MatchRule selects how a layer key is compared with candidate directories.
type MatchRule string

const (
	MatchContains MatchRule = "contains"
	MatchSuffix   MatchRule = "suffix"
)

// Bindings maps each layer to the rule used to find its directory.
type Bindings map[Layer]MatchRule

// DefaultBindings returns the convention table used when nothing is overridden.
func DefaultBindings() Bindings {
	return Bindings{
		ApplicationRepositories: MatchContains,
		PersistenceRepositories: MatchContains,
		ApplicationServices:     MatchContains,
		PersistenceServices:     MatchContains,
		ApplicationFeatures:     MatchSuffix,
		WebAPIControllers:       MatchSuffix,
		WebAPIDtos:              MatchSuffix,
		WebAPIProfiles:          MatchSuffix,
	}
}

// Layers returns every known layer in table order.
func Layers() []Layer {
	return []Layer{
		ApplicationRepositories,
		PersistenceRepositories,
		ApplicationServices,
		PersistenceServices,
		ApplicationFeatures,
		WebAPIControllers,
		WebAPIDtos,
		WebAPIProfiles,
	}
}

// Rule returns the binding for layer, falling back to MatchContains.
func (b Bindings) Rule(layer Layer) MatchRule {
	if rule, ok := b[layer]; ok {
		return rule
	}
	return MatchContains
}

// ParseMatchRule validates a rule name from configuration.
func ParseMatchRule(value string) (MatchRule, error) {
	switch MatchRule(strings.ToLower(strings.TrimSpace(value))) {
	case MatchContains:
		return MatchContains, nil
	case MatchSuffix, "endswith", "ends-with":
		return MatchSuffix, nil
	}
	return "", fmt.Errorf("%w: %q", errUnknownMatchRule, value)
}

// Key builds the dotted lookup key for a layer, e.g. "Shop.Application.Repositories".
func Key(project string, layer Layer) string {
	return project + "." + strings.ReplaceAll(string(layer), "/", ".")
}

// FirstMatch is the tie-break policy: candidates are tried in the order given and
// the first match wins. Callers supply a stable (lexical) order.
func FirstMatch(root string, dirs []string, key string, rule MatchRule) (string, error) {
	for _, dir := range dirs {
		if Matches(root, dir, key, rule) {
			return dir, nil
		}
	}
	return "", fmt.Errorf("%w: no directory matching %q under %s", ErrLayerNotFound, key, root)
}

// Resolve applies the FirstMatch policy.
func Resolve(root string, dirs []string, key string, rule MatchRule) (string, error) {
	return FirstMatch(root, dirs, key, rule)
}

// Matches reports whether dir satisfies key under rule. The root-relative path is
// compared in dotted form so "src/Shop.Application/Repositories" and a directory
// literally named "Shop.Application.Repositories" both match, always on segment
// boundaries.
func Matches(root, dir, key string, rule MatchRule) bool {
	dotted := dottedPath(root, dir)
	if dotted == "" || key == "" {
		return false
	}
	switch rule {
	case MatchSuffix:
		return dotted == key || strings.HasSuffix(dotted, "."+key)
	default:
		return strings.Contains("."+dotted+".", "."+key+".")
	}
}

func dottedPath(root, dir string) string {
	rel := dir
	if root != "" {
		if r, err := filepath.Rel(root, dir); err == nil {
			rel = r
		}
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || strings.HasPrefix(rel, "../") {
		return ""
	}
	return strings.ReplaceAll(strings.Trim(rel, "/"), "/", ".")
}

var errUnknownLayer = errors.New("unknown layer")

// ParseLayer accepts a layer label in slash or dotted form, ignoring case.
func ParseLayer(value string) (Layer, error) {
	key := strings.ReplaceAll(strings.TrimSpace(value), ".", "/")
	for _, layer := range Layers() {
		if strings.EqualFold(string(layer), key) {
			return layer, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errUnknownLayer, value)
}

// Override returns a copy of b with the given rules replacing the defaults.
func (b Bindings) Override(rules map[Layer]MatchRule) Bindings {
	out := make(Bindings, len(b)+len(rules))
	for layer, rule := range b {
		out[layer] = rule
	}
	for layer, rule := range rules {
		out[layer] = rule
	}
	return out
}

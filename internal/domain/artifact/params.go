// Where: internal/domain/artifact/params.go
// What: Render parameters and the artifact unit of output.
// Why: Every artifact is a pure function of one validated parameter set.
package artifact

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/poruru/layergen/internal/domain/layout"
)

var (
	ErrInvalidName         = errors.New("invalid name")
	errFeatureGroupMissing = errors.New("feature group name is required")
	errControllerMissing   = errors.New("controller name is required")
)

// Identifiers accept letters from any script, matching what the entity scanner discovers.
const identifier = `[\p{L}\p{Nl}_][\p{L}\p{Nl}\p{Nd}\p{Mn}\p{Mc}\p{Pc}]*`

var (
	identifierPattern = regexp.MustCompile(`^` + identifier + `$`)
	namespacePattern  = regexp.MustCompile(`^` + identifier + `(\.` + identifier + `)*$`)
)

// Params carries everything a render function may depend on.
type Params struct {
	Project      string
	Entity       string
	IDType       string
	FeatureGroup string
	Controller   string
	DbContext    string
}

// Artifact is one rendered file. RelativePath is slash separated and relative
// to the directory bound to Layer.
type Artifact struct {
	Layer        layout.Layer
	RelativePath string
	Content      string
}

// Validate checks the fields shared by every family.
func (p Params) Validate() error {
	if !namespacePattern.MatchString(p.Project) {
		return fmt.Errorf("%w: project %q", ErrInvalidName, p.Project)
	}
	if !identifierPattern.MatchString(p.Entity) {
		return fmt.Errorf("%w: entity %q", ErrInvalidName, p.Entity)
	}
	if strings.TrimSpace(p.IDType) == "" {
		return fmt.Errorf("%w: identifier type is empty", ErrInvalidName)
	}
	return nil
}

func (p Params) validateFeature() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(p.FeatureGroup) == "" {
		return errFeatureGroupMissing
	}
	if !identifierPattern.MatchString(p.FeatureGroup) {
		return fmt.Errorf("%w: feature group %q", ErrInvalidName, p.FeatureGroup)
	}
	return nil
}

func (p Params) validateRouting() error {
	if err := p.validateFeature(); err != nil {
		return err
	}
	controller := strings.TrimSpace(p.Controller)
	if controller == "" {
		return errControllerMissing
	}
	// The class name is the trimmed name plus the suffix, so the bare suffix is not a name.
	if trimmed := strings.TrimSuffix(controller, "Controller"); !identifierPattern.MatchString(trimmed) {
		return fmt.Errorf("%w: controller %q", ErrInvalidName, p.Controller)
	}
	return nil
}

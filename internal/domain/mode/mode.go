// Where: internal/domain/mode/mode.go
// What: Generation modes, actions, and identifier types.
// Why: Keep mode composition a fixed, inspectable table.
package mode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownMode   = errors.New("unknown generation mode")
	ErrUnknownIDType = errors.New("unknown identifier type")
)

// Mode is a user-selectable generation mode.
type Mode string

const (
	Repository            Mode = "Repository"
	Service               Mode = "Service"
	Feature               Mode = "Feature"
	RepositoryWithService Mode = "RepositoryWithService"
	RepositoryWithFeature Mode = "RepositoryWithFeature"
	All                   Mode = "All"
)

// Action is one underlying generation step.
type Action string

const (
	ActionGateway Action = "gateway"
	ActionService Action = "service"
	ActionFeature Action = "feature"
	ActionRouting Action = "routing"
)

var composition = map[Mode][]Action{
	Repository:            {ActionGateway},
	Service:               {ActionService},
	Feature:               {ActionFeature, ActionRouting},
	RepositoryWithService: {ActionGateway, ActionService},
	RepositoryWithFeature: {ActionGateway, ActionFeature, ActionRouting},
	All:                   {ActionGateway, ActionService, ActionFeature, ActionRouting},
}

var aliases = map[string]Mode{
	"gateway":            Repository,
	"gatewaywithservice": RepositoryWithService,
	"gatewaywithfeature": RepositoryWithFeature,
}

// Modes returns every mode in menu order.
func Modes() []Mode {
	return []Mode{Repository, Service, Feature, RepositoryWithService, RepositoryWithFeature, All}
}

// Parse resolves a mode name case-insensitively, accepting gateway aliases.
func Parse(value string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	for _, m := range Modes() {
		if strings.ToLower(string(m)) == key {
			return m, nil
		}
	}
	if m, ok := aliases[key]; ok {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, value)
}

// Actions returns the ordered actions for m. Feature is always followed by routing.
func (m Mode) Actions() []Action {
	actions := composition[m]
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	_, ok := composition[m]
	return ok
}

// Needs reports whether m includes action.
func (m Mode) Needs(action Action) bool {
	for _, a := range composition[m] {
		if a == action {
			return true
		}
	}
	return false
}

// IDTypes returns the selectable identifier types.
func IDTypes() []string {
	return []string{"int", "long", "string", "Guid", "object"}
}

// ParseIDType resolves an identifier type case-insensitively to its canonical spelling.
func ParseIDType(value string) (string, error) {
	key := strings.TrimSpace(value)
	for _, id := range IDTypes() {
		if strings.EqualFold(id, key) {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownIDType, value)
}

// Where: internal/command/generate_inputs.go
// What: Flag, prompt and default resolution for generate inputs.
// Why: Keep prompt-driven input logic separate from the run flow.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/poruru/layergen/internal/domain/entity"
	"github.com/poruru/layergen/internal/domain/history"
	"github.com/poruru/layergen/internal/domain/mode"
	"github.com/poruru/layergen/internal/infra/discovery"
	"github.com/poruru/layergen/internal/infra/interaction"
	"github.com/poruru/layergen/internal/usecase/scaffold"
)

var (
	errProjectRequired      = errors.New("project name is required in non-interactive mode (use --project)")
	errProjectRootMissing   = errors.New("project root does not exist")
	errIDTypeRequired       = errors.New("identifier type is required in non-interactive mode (use --id-type)")
	errEntityRequired       = errors.New("entity is required in non-interactive mode (use --entity)")
	errModeRequired         = errors.New("mode is required in non-interactive mode (use --mode)")
	errFeatureRequired      = errors.New("feature group is required in non-interactive mode (use --feature)")
	errControllerRequired   = errors.New("controller is required in non-interactive mode (use --controller)")
	errNoEntitiesDiscovered = errors.New("no entities found")
)

func resolveProject(value string, root string, isTTY bool, prompter interaction.Prompter) (string, error) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed, nil
	}
	if !isTTY || prompter == nil {
		return "", errProjectRequired
	}
	detected, err := discovery.DetectSolutionName(root)
	if err != nil {
		return "", err
	}
	if detected != "" {
		ok, err := prompter.Confirm(fmt.Sprintf("Use %s as the project name?", detected), true)
		if err != nil {
			return "", fmt.Errorf("prompt project: %w", err)
		}
		if ok {
			return detected, nil
		}
	}
	input, err := prompter.Input("Project name", nil)
	if err != nil {
		return "", fmt.Errorf("prompt project: %w", err)
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%w: project name", scaffold.ErrEmptyInput)
	}
	return input, nil
}

func resolveIDType(value string, isTTY bool, prompter interaction.Prompter) (string, error) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return mode.ParseIDType(trimmed)
	}
	if !isTTY || prompter == nil {
		return "", errIDTypeRequired
	}
	selected, err := prompter.Select("Identifier type", mode.IDTypes())
	if err != nil {
		return "", fmt.Errorf("prompt identifier type: %w", err)
	}
	return mode.ParseIDType(selected)
}

// resolveEntity accepts a flag value as is; otherwise it offers the discovered entities.
func resolveEntity(value string, descriptors func() ([]entity.Descriptor, error), isTTY bool, prompter interaction.Prompter) (string, error) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed, nil
	}
	if !isTTY || prompter == nil {
		return "", errEntityRequired
	}
	found, err := descriptors()
	if err != nil {
		return "", err
	}
	names := entity.UniqueNames(found)
	if len(names) == 0 {
		return "", errNoEntitiesDiscovered
	}
	selected, err := prompter.Select("Entity", names)
	if err != nil {
		return "", fmt.Errorf("prompt entity: %w", err)
	}
	return selected, nil
}

func resolveMode(value string, isTTY bool, prompter interaction.Prompter) (mode.Mode, error) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return mode.Parse(trimmed)
	}
	if !isTTY || prompter == nil {
		return "", errModeRequired
	}
	options := make([]interaction.SelectOption, 0, len(mode.Modes()))
	for _, m := range mode.Modes() {
		options = append(options, interaction.SelectOption{Label: modeLabel(m), Value: string(m)})
	}
	selected, err := prompter.SelectValue("Mode", options)
	if err != nil {
		return "", fmt.Errorf("prompt mode: %w", err)
	}
	return mode.Parse(selected)
}

// requireFeatureFlags fails before anything is written when a non-interactive
// run selects a mode whose feature steps would need a prompt.
func requireFeatureFlags(m mode.Mode, flags GenerateCmd, isTTY bool) error {
	if isTTY {
		return nil
	}
	if m.Needs(mode.ActionFeature) && strings.TrimSpace(flags.Feature) == "" {
		return errFeatureRequired
	}
	if m.Needs(mode.ActionRouting) && strings.TrimSpace(flags.Controller) == "" {
		return errControllerRequired
	}
	return nil
}

func modeLabel(m mode.Mode) string {
	switch m {
	case mode.Repository:
		return "Repository (interface + EF implementation)"
	case mode.Service:
		return "Service (interface + implementation)"
	case mode.Feature:
		return "Feature (commands, queries, controller, DTOs)"
	case mode.RepositoryWithService:
		return "Repository + Service"
	case mode.RepositoryWithFeature:
		return "Repository + Feature"
	default:
		return "All"
	}
}

// promptInputs asks for the feature group and controller only when an action needs them.
type promptInputs struct {
	isTTY    bool
	prompter interaction.Prompter
	entity   string
	recent   []string
}

func (p promptInputs) FeatureGroup() (string, error) {
	if !p.isTTY || p.prompter == nil {
		return "", errFeatureRequired
	}
	suggestions := history.Suggestions("", p.recent, []string{p.entity + "s"})
	value, err := p.prompter.Input("Feature group name", suggestions)
	if err != nil {
		return "", fmt.Errorf("prompt feature group: %w", err)
	}
	return value, nil
}

func (p promptInputs) Controller(featureGroup string) (string, error) {
	if !p.isTTY || p.prompter == nil {
		return "", errControllerRequired
	}
	value, err := p.prompter.Input("Controller name", history.Suggestions(featureGroup, nil, nil))
	if err != nil {
		return "", fmt.Errorf("prompt controller: %w", err)
	}
	return value, nil
}

// Where: internal/command/generate.go
// What: generate command entry and summary output.
// Why: Wire resolved inputs into the scaffold engine and report what was written.
package command

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/poruru/layergen/internal/domain/change"
	"github.com/poruru/layergen/internal/domain/entity"
	"github.com/poruru/layergen/internal/infra/config"
	"github.com/poruru/layergen/internal/infra/fileops"
	"github.com/poruru/layergen/internal/infra/ui"
	"github.com/poruru/layergen/internal/usecase/scaffold"
)

// runGenerate executes the 'generate' command.
func runGenerate(cli CLI, deps Dependencies, out io.Writer) int {
	flags := cli.Generate
	ctx, err := newCommandContext(cli, deps, config.Overrides{
		Project:     flags.Project,
		EntitiesDir: flags.EntitiesDir,
		Extension:   flags.Ext,
	})
	if err != nil {
		return exitWithError(out, err)
	}
	defer ctx.close()

	req, err := resolveGenerateRequest(ctx, flags, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	var base scaffold.Writer = fileops.Materializer{}
	if deps.Writer != nil {
		base = deps.Writer
	}
	if flags.DryRun {
		base = &scaffold.Recorder{}
	}
	tracker := fileops.NewTracker(base)
	inputs := promptInputs{
		isTTY:    deps.IsTTY(),
		prompter: deps.Prompter,
		entity:   req.Entity,
		recent:   ctx.cfg.RecentFeatureGroups,
	}
	engine := scaffold.NewEngine(ctx.newResolver(req.Project), tracker, inputs, ctx.logger)

	result, err := engine.Run(req)
	u := newUI(out)
	if err != nil {
		if len(result.Written) > 0 {
			u.List("⚠️", "Files written before the failure", relativeAll(ctx, result.Written))
		}
		return exitWithError(out, err)
	}

	printGenerateSummary(u, ctx, req, result, tracker, flags.DryRun)

	if !flags.DryRun && !flags.NoSave && result.FeatureGroup != "" {
		if err := config.RememberFeatureGroup(ctx.root, result.FeatureGroup); err != nil {
			ctx.logger.Warn("remember feature group", zap.Error(err))
			u.Warn(fmt.Sprintf("could not save defaults: %v", err))
		}
	}
	return 0
}

func resolveGenerateRequest(ctx commandContext, flags GenerateCmd, deps Dependencies) (scaffold.Request, error) {
	isTTY := deps.IsTTY()
	prompter := deps.Prompter

	project, err := resolveProject(ctx.settings.Project, ctx.root, isTTY, prompter)
	if err != nil {
		return scaffold.Request{}, err
	}
	idType, err := resolveIDType(flags.IDType, isTTY, prompter)
	if err != nil {
		return scaffold.Request{}, err
	}
	discover := func() ([]entity.Descriptor, error) {
		return ctx.walker.Entities(ctx.root, ctx.settings.EntitiesDir, ctx.settings.Extension, ctx.settings.Keywords)
	}
	entityName, err := resolveEntity(flags.Entity, discover, isTTY, prompter)
	if err != nil {
		return scaffold.Request{}, err
	}
	selectedMode, err := resolveMode(flags.Mode, isTTY, prompter)
	if err != nil {
		return scaffold.Request{}, err
	}
	if err := requireFeatureFlags(selectedMode, flags, isTTY); err != nil {
		return scaffold.Request{}, err
	}
	ctx.logger.Debug("generate inputs resolved",
		zap.String("project", project),
		zap.String("entity", entityName),
		zap.String("id_type", idType),
		zap.String("mode", string(selectedMode)),
	)
	return scaffold.Request{
		Project:      project,
		Entity:       entityName,
		IDType:       idType,
		Mode:         selectedMode,
		FeatureGroup: flags.Feature,
		Controller:   flags.Controller,
	}, nil
}

func printGenerateSummary(u ui.UserInterface, ctx commandContext, req scaffold.Request, result scaffold.Result, tracker *fileops.Tracker, dryRun bool) {
	rows := []ui.KeyValue{
		{Key: "Project", Value: req.Project},
		{Key: "Entity", Value: req.Entity},
		{Key: "Identifier type", Value: req.IDType},
		{Key: "Mode", Value: req.Mode},
	}
	if result.FeatureGroup != "" {
		rows = append(rows, ui.KeyValue{Key: "Feature group", Value: result.FeatureGroup})
	}
	if result.Controller != "" {
		rows = append(rows, ui.KeyValue{Key: "Controller", Value: result.Controller})
	}
	u.Block("📦", "Generate", rows)

	lines := make([]string, 0, len(result.Written))
	for _, path := range result.Written {
		line := ctx.relative(path)
		if kind, ok := tracker.Kind(path); ok {
			line = fmt.Sprintf("%s (%s)", line, kind)
		}
		lines = append(lines, line)
	}
	counts := change.FormatCounts(tracker.Counts)
	if dryRun {
		u.List("📝", "Would write (dry run)", lines)
		u.Success(fmt.Sprintf("%d files rendered, nothing written: %s", len(result.Written), counts))
		return
	}
	u.List("📝", "Written", lines)
	u.Success(fmt.Sprintf("%d files written: %s", len(result.Written), counts))
}

func relativeAll(ctx commandContext, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, ctx.relative(p))
	}
	return out
}

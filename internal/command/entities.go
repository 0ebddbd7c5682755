// Where: internal/command/entities.go
// What: entities command.
// Why: Show what discovery finds before generating anything.
package command

import (
	"fmt"
	"io"

	"github.com/poruru/layergen/internal/domain/entity"
	"github.com/poruru/layergen/internal/infra/config"
	"github.com/poruru/layergen/internal/infra/ui"
)

func runEntities(cli CLI, deps Dependencies, out io.Writer) int {
	ctx, err := newCommandContext(cli, deps, config.Overrides{
		EntitiesDir: cli.Entities.EntitiesDir,
		Extension:   cli.Entities.Ext,
	})
	if err != nil {
		return exitWithError(out, err)
	}
	defer ctx.close()

	descriptors, err := ctx.walker.Entities(ctx.root, ctx.settings.EntitiesDir, ctx.settings.Extension, ctx.settings.Keywords)
	if err != nil {
		return exitWithError(out, err)
	}
	if len(descriptors) == 0 {
		return exitWithSuggestion(out,
			fmt.Sprintf("No entities found under %s (filter %q, extension %s).", ctx.root, ctx.settings.EntitiesDir, ctx.settings.Extension),
			[]string{"pass --entities-dir with a path fragment that contains your entity classes", "pass --ext when sources do not end with .cs"},
		)
	}

	sources := map[string]string{}
	for _, d := range descriptors {
		if _, ok := sources[d.Name]; !ok {
			sources[d.Name] = ctx.relative(d.Source)
		}
	}
	rows := []ui.KeyValue{}
	for _, name := range entity.UniqueNames(descriptors) {
		rows = append(rows, ui.KeyValue{Key: name, Value: sources[name]})
	}
	newUI(out).Block("🔎", "Entities", rows)
	return 0
}

// Where: internal/command/layers.go
// What: layers command.
// Why: Make convention lookups visible so a missing directory is easy to spot.
package command

import (
	"errors"
	"io"
	"strings"

	"github.com/poruru/layergen/internal/domain/layout"
	"github.com/poruru/layergen/internal/infra/config"
	"github.com/poruru/layergen/internal/infra/discovery"
	"github.com/poruru/layergen/internal/infra/ui"
)

func runLayers(cli CLI, deps Dependencies, out io.Writer) int {
	ctx, err := newCommandContext(cli, deps, config.Overrides{Project: cli.Layers.Project})
	if err != nil {
		return exitWithError(out, err)
	}
	defer ctx.close()

	project := strings.TrimSpace(ctx.settings.Project)
	if project == "" {
		detected, err := discovery.DetectSolutionName(ctx.root)
		if err != nil {
			return exitWithError(out, err)
		}
		project = detected
	}
	if project == "" {
		return exitWithError(out, errProjectRequired)
	}

	resolver := ctx.newResolver(project)
	rows := make([]ui.KeyValue, 0, len(layout.Layers()))
	missing := 0
	for _, layer := range layout.Layers() {
		dir, err := resolver.Resolve(layer)
		switch {
		case errors.Is(err, layout.ErrLayerNotFound):
			missing++
			rows = append(rows, ui.KeyValue{Key: resolver.Key(layer), Value: "(not found, " + string(ctx.bindings.Rule(layer)) + ")"})
		case err != nil:
			return exitWithError(out, err)
		default:
			rows = append(rows, ui.KeyValue{Key: resolver.Key(layer), Value: ctx.relative(dir)})
		}
	}
	u := newUI(out)
	u.Block("📂", "Layers", rows)
	if missing > 0 {
		u.Warn("Some layers have no matching directory; modes that need them will fail.")
	}
	return 0
}

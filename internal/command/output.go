// Where: internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface construction.
package command

import (
	"io"
	"os"

	"github.com/poruru/layergen/internal/infra/interaction"
	"github.com/poruru/layergen/internal/infra/ui"
)

// newUI enables emoji only when out is a terminal.
func newUI(out io.Writer) ui.UserInterface {
	file, ok := out.(*os.File)
	return ui.NewUI(out, ok && interaction.IsTerminal(file))
}

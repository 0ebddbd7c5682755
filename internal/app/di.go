// Where: internal/app/di.go
// What: CLI dependency wiring.
// Why: Keep real terminal, filesystem and logger wiring in one place for main and tests.
package app

import (
	"io"
	"os"

	"github.com/poruru/layergen/internal/command"
	"github.com/poruru/layergen/internal/infra/fileops"
	"github.com/poruru/layergen/internal/infra/interaction"
	"github.com/poruru/layergen/internal/infra/logging"
)

// BuildDependencies constructs CLI dependencies. It returns the dependencies
// bundle, a closer for cleanup, and any initialization error.
func BuildDependencies(_ []string) (command.Dependencies, io.Closer, error) {
	deps := command.Dependencies{
		Out:       os.Stdout,
		ErrOut:    os.Stderr,
		Prompter:  interaction.HuhPrompter{},
		IsTTY:     stdinIsTerminal,
		Getwd:     os.Getwd,
		Writer:    fileops.Materializer{},
		NewLogger: logging.New,
	}
	return deps, nil, nil
}

func stdinIsTerminal() bool {
	return interaction.IsTerminal(os.Stdin)
}

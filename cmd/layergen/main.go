// Where: cmd/layergen/main.go
// What: CLI entrypoint.
// Why: Run layergen commands with the real dependencies.
package main

import (
	"fmt"
	"os"

	"github.com/poruru/layergen/internal/app"
	"github.com/poruru/layergen/internal/command"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	deps, closer, err := app.BuildDependencies(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if closer != nil {
		defer closer.Close()
	}
	return command.Run(args, deps)
}

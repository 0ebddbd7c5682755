// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/poruru/layergen/internal/infra/interaction"
	"github.com/poruru/layergen/internal/infra/logging"
	"github.com/poruru/layergen/internal/usecase/scaffold"
	"github.com/poruru/layergen/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// Nil fields fall back to the real terminal, filesystem and logger.
type Dependencies struct {
	Out       io.Writer
	ErrOut    io.Writer
	Prompter  interaction.Prompter
	IsTTY     func() bool
	Getwd     func() (string, error)
	Writer    scaffold.Writer
	NewLogger func(logging.Options) (*zap.Logger, func())
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	EnvFile  string      `name:"env-file" help:"Path to .env file"`
	Dir      string      `short:"C" name:"dir" help:"Project root (default: nearest directory with a solution file)"`
	Verbose  bool        `short:"v" help:"Verbose diagnostics on stderr"`
	Generate GenerateCmd `cmd:"" help:"Generate layer sources for an entity"`
	Entities EntitiesCmd `cmd:"" help:"List entities found in the project"`
	Layers   LayersCmd   `cmd:"" help:"Show the directory bound to each layer"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

type (
	// GenerateCmd defines the generate command flags.
	GenerateCmd struct {
		Project     string `short:"p" help:"Project (root namespace) name"`
		Entity      string `help:"Entity class name"`
		IDType      string `name:"id-type" help:"Identifier type (int/long/string/Guid/object)"`
		Mode        string `short:"m" help:"Generation mode (Repository/Service/Feature/RepositoryWithService/RepositoryWithFeature/All)"`
		Feature     string `short:"f" help:"Feature group name"`
		Controller  string `short:"c" help:"Controller name (without the Controller suffix)"`
		EntitiesDir string `name:"entities-dir" help:"Subpath filter for entity discovery"`
		Ext         string `name:"ext" help:"Source file extension"`
		DryRun      bool   `name:"dry-run" help:"Render and resolve without writing files"`
		NoSave      bool   `name:"no-save-defaults" help:"Do not remember the feature group"`
	}

	// EntitiesCmd defines the entities command flags.
	EntitiesCmd struct {
		EntitiesDir string `name:"entities-dir" help:"Subpath filter for entity discovery"`
		Ext         string `name:"ext" help:"Source file extension"`
	}

	// LayersCmd defines the layers command flags.
	LayersCmd struct {
		Project string `short:"p" help:"Project (root namespace) name"`
	}

	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	deps = withDefaults(deps)
	out := deps.Out

	// Handle no arguments: interactive generate on a terminal, usage otherwise
	if len(args) == 0 {
		if !deps.IsTTY() {
			return runNoArgs(out)
		}
		args = []string{"generate"}
	}

	cli := CLI{}
	parser, err := kong.New(&cli, kong.Name(cliName()), kong.Writers(out, deps.ErrOut))
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, out)
	}

	loadEnvFile(cli.EnvFile, out)

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	newUI(out).Warn("unknown command")
	return 1
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.IsTTY == nil {
		deps.IsTTY = func() bool { return interaction.IsTerminal(os.Stdin) }
	}
	if deps.Getwd == nil {
		deps.Getwd = os.Getwd
	}
	if deps.NewLogger == nil {
		deps.NewLogger = logging.New
	}
	return deps
}

// loadEnvFile loads the given file, or .env in the current directory when present.
func loadEnvFile(path string, out io.Writer) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			newUI(out).Warn(fmt.Sprintf("failed to load env file %s: %v", path, err))
		}
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			newUI(out).Warn(fmt.Sprintf("failed to load .env: %v", err))
		}
	}
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"generate": runGenerate,
		"entities": runEntities,
		"layers":   runLayers,
		"version":  func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	newUI(out).Info(version.GetVersion())
	return 0
}

// runNoArgs prints a short usage when there is no terminal to prompt on.
func runNoArgs(out io.Writer) int {
	ui := newUI(out)
	cmd := cliName()
	ui.Info("Usage:")
	ui.Info(fmt.Sprintf("  %s generate --project <name> --entity <name> --id-type <type> --mode <mode> [flags]", cmd))
	ui.Info(fmt.Sprintf("  %s entities | layers --project <name> | version", cmd))
	ui.Info("")
	ui.Info(fmt.Sprintf("Try: %s generate --help", cmd))
	return 0
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, out io.Writer) int {
	msg := err.Error()
	if strings.Contains(msg, "expected string value") {
		ui := newUI(out)
		cmd := cliName()
		switch {
		case strings.Contains(msg, "--mode"):
			ui.Warn("`-m/--mode` expects a value. Use one of the generation modes or omit the flag for interactive input.")
			ui.Info(fmt.Sprintf("Example: %s generate -m RepositoryWithFeature", cmd))
			return 1
		case strings.Contains(msg, "--project"):
			ui.Warn("`-p/--project` expects a value. Provide the root namespace or omit the flag for interactive input.")
			ui.Info(fmt.Sprintf("Example: %s generate -p MyProj", cmd))
			return 1
		case strings.Contains(msg, "--env-file"):
			ui.Warn("`--env-file` expects a value. Provide a file path.")
			ui.Info(fmt.Sprintf("Example: %s --env-file .env.local generate", cmd))
			return 1
		}
	}
	return exitWithError(out, err)
}

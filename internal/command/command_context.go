// Where: internal/command/command_context.go
// What: Per-run project root, configuration, settings and logger.
// Why: Every command resolves these the same way before doing its work.
package command

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/poruru/layergen/internal/domain/layout"
	"github.com/poruru/layergen/internal/infra/config"
	"github.com/poruru/layergen/internal/infra/discovery"
	"github.com/poruru/layergen/internal/infra/fileops"
	infralayout "github.com/poruru/layergen/internal/infra/layout"
	"github.com/poruru/layergen/internal/infra/logging"
)

type commandContext struct {
	root     string
	cfg      config.Config
	settings config.Settings
	bindings layout.Bindings
	walker   discovery.Walker
	logger   *zap.Logger
	closeLog func()
}

func newCommandContext(cli CLI, deps Dependencies, flags config.Overrides) (commandContext, error) {
	root, err := resolveRoot(cli.Dir, deps.Getwd)
	if err != nil {
		return commandContext{}, err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return commandContext{}, err
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return commandContext{}, err
	}
	settings := cfg.Resolve(flags)

	logFile := strings.TrimSpace(cfg.Log.File)
	if logFile != "" && !filepath.IsAbs(logFile) {
		logFile = filepath.Join(root, logFile)
	}
	logger, closeLog := deps.NewLogger(logging.Options{
		Verbose:    cli.Verbose,
		Console:    deps.ErrOut,
		File:       logFile,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	logger.Debug("project root resolved", zap.String("root", root))

	return commandContext{
		root:     root,
		cfg:      cfg,
		settings: settings,
		bindings: bindings,
		walker:   discovery.NewWalker(settings.SkipDirs...),
		logger:   logger,
		closeLog: closeLog,
	}, nil
}

func resolveRoot(dir string, getwd func() (string, error)) (string, error) {
	if trimmed := strings.TrimSpace(dir); trimmed != "" {
		abs, err := filepath.Abs(trimmed)
		if err != nil {
			return "", fmt.Errorf("resolve project root: %w", err)
		}
		if !fileops.DirExists(abs) {
			return "", fmt.Errorf("%w: %s", errProjectRootMissing, abs)
		}
		return abs, nil
	}
	cwd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return config.ResolveProjectRoot(cwd)
}

func (c commandContext) close() {
	if c.closeLog != nil {
		c.closeLog()
	}
}

func (c commandContext) newResolver(project string) *infralayout.Resolver {
	return infralayout.NewResolver(c.root, project, c.bindings, c.walker, c.logger)
}

// relative renders path relative to the project root when possible.
func (c commandContext) relative(path string) string {
	if rel, err := filepath.Rel(c.root, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}

// Where: internal/infra/config/settings.go
// What: Effective settings after merging flags, environment, config and defaults.
// Why: Keep the precedence order in one place.
package config

import (
	"strings"

	"github.com/poruru/layergen/internal/domain/entity"
	"github.com/poruru/layergen/internal/infra/envutil"
	"github.com/poruru/layergen/internal/meta"
)

// Overrides are values given explicitly on the command line.
type Overrides struct {
	Project     string
	EntitiesDir string
	Extension   string
}

// Settings are the values a run actually uses.
type Settings struct {
	Project     string
	EntitiesDir string
	Extension   string
	Keywords    []string
	SkipDirs    []string
}

// Resolve applies flag > environment > config file > default.
func (c Config) Resolve(flags Overrides) Settings {
	settings := Settings{
		Project:     pick(flags.Project, envutil.SuffixProject, c.Project, ""),
		EntitiesDir: pick(flags.EntitiesDir, envutil.SuffixEntitiesDir, c.EntitiesDir, meta.DefaultEntitiesDir),
		Extension:   pick(flags.Extension, envutil.SuffixExtension, c.Extension, meta.DefaultSourceExt),
		Keywords:    append([]string{}, entity.DefaultKeywords...),
		SkipDirs:    append([]string{}, c.SkipDirs...),
	}
	if len(c.Keywords) > 0 {
		settings.Keywords = append([]string{}, c.Keywords...)
	}
	if settings.Extension != "" && !strings.HasPrefix(settings.Extension, ".") {
		settings.Extension = "." + settings.Extension
	}
	return settings
}

func pick(flag, envSuffix, configured, fallback string) string {
	if value := strings.TrimSpace(flag); value != "" {
		return value
	}
	if value, ok := envutil.LookupHostEnv(envSuffix); ok {
		return value
	}
	if value := strings.TrimSpace(configured); value != "" {
		return value
	}
	return fallback
}

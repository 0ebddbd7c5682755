// Where: internal/infra/config/config.go
// What: Project config load/save.
// Why: Manage <project_root>/.layergen/config.yaml consistently.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/poruru/layergen/internal/domain/history"
	"github.com/poruru/layergen/internal/domain/layout"
	"github.com/poruru/layergen/internal/infra/fileops"
	"github.com/poruru/layergen/internal/meta"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config represents <project_root>/.layergen/config.yaml.
type Config struct {
	Version             int                    `yaml:"version"`
	Project             string                 `yaml:"project,omitempty"`
	EntitiesDir         string                 `yaml:"entities_dir,omitempty"`
	Extension           string                 `yaml:"extension,omitempty"`
	Keywords            []string               `yaml:"keywords,omitempty"`
	SkipDirs            []string               `yaml:"skip_dirs,omitempty"`
	Layers              map[string]LayerConfig `yaml:"layers,omitempty"`
	Log                 LogConfig              `yaml:"log,omitempty"`
	RecentFeatureGroups []string               `yaml:"recent_feature_groups,omitempty"`
}

// LayerConfig overrides how one layer directory is matched.
type LayerConfig struct {
	Match string `yaml:"match,omitempty"`
}

// LogConfig enables the rotating diagnostic log file.
type LogConfig struct {
	File       string `yaml:"file,omitempty"`
	Level      string `yaml:"level,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
}

// DefaultConfig returns an initialized Config with version set.
func DefaultConfig() Config {
	return Config{Version: 1}
}

// ConfigPath returns the path to the project config file.
func ConfigPath(projectRoot string) (string, error) {
	root := strings.TrimSpace(projectRoot)
	if root == "" {
		return "", fmt.Errorf("project root is required")
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return filepath.Join(root, meta.HomeDir, meta.ConfigFileName), nil
}

// Load reads the project config under projectRoot. A missing file yields the defaults.
func Load(projectRoot string) (Config, error) {
	path, err := ConfigPath(projectRoot)
	if err != nil {
		return Config{}, err
	}
	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile reads, validates and decodes one config file.
func LoadFile(path string) (Config, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return DefaultConfig(), nil
	}
	if err := validateConfig(payload); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: decode %s: %w", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := fileops.WriteConfigFile(path, string(payload)); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// RememberFeatureGroup records group as the most recent feature group and saves.
func RememberFeatureGroup(projectRoot, group string) error {
	path, err := ConfigPath(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		cfg = DefaultConfig()
	}
	cfg.RecentFeatureGroups = history.Push(cfg.RecentFeatureGroups, group, history.Limit)
	return Save(path, cfg)
}

// Bindings returns the layer binding table with configured overrides applied.
func (c Config) Bindings() (layout.Bindings, error) {
	overrides := make(map[layout.Layer]layout.MatchRule, len(c.Layers))
	for name, layerCfg := range c.Layers {
		layer, err := layout.ParseLayer(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if strings.TrimSpace(layerCfg.Match) == "" {
			continue
		}
		rule, err := layout.ParseMatchRule(layerCfg.Match)
		if err != nil {
			return nil, fmt.Errorf("%w: layer %s: %w", ErrInvalidConfig, name, err)
		}
		overrides[layer] = rule
	}
	return layout.DefaultBindings().Override(overrides), nil
}

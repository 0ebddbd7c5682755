// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"
	"strings"

	"github.com/poruru/layergen/internal/meta"
)

// Env suffixes read by the tool.
const (
	SuffixProject     = "PROJECT"
	SuffixEntitiesDir = "ENTITIES_DIR"
	SuffixExtension   = "EXT"
)

// HostEnvKey constructs a host-level environment variable name.
// Example: HostEnvKey("PROJECT") returns "LAYERGEN_PROJECT".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// LookupHostEnv returns the trimmed value of a host-level variable and whether
// it is set to something non-blank.
func LookupHostEnv(suffix string) (string, bool) {
	value, ok := os.LookupEnv(HostEnvKey(suffix))
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

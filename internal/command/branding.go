// Where: internal/command/branding.go
// What: CLI naming for usage output.
// Why: Keep user-facing command names consistent when the binary is wrapped.
package command

import (
	"os"
	"strings"

	"github.com/poruru/layergen/internal/meta"
)

func cliName() string {
	name := strings.TrimSpace(os.Getenv("CLI_CMD"))
	if name == "" {
		name = strings.TrimSpace(meta.Slug)
	}
	if name == "" {
		name = meta.AppName
	}
	return name
}

// Where: internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Every failure ends the run with the same format and exit code.
package command

import (
	"fmt"
	"io"
)

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	newUI(out).Info(fmt.Sprintf("✗ %v", err))
	return 1
}

// exitWithSuggestion prints a message followed by next steps.
func exitWithSuggestion(out io.Writer, message string, suggestions []string) int {
	ui := newUI(out)
	ui.Warn(message)
	if len(suggestions) > 0 {
		ui.List("", "Next steps:", suggestions)
	}
	return 1
}

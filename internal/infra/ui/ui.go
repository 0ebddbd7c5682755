// Where: internal/infra/ui/ui.go
// What: High-level output surface used by commands.
// Why: Let commands report results without knowing about formatting.
package ui

import "io"

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes the output helpers commands rely on.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Block(emoji, title string, rows []KeyValue)
	List(emoji, title string, lines []string)
}

// NewUI returns a UserInterface writing to out.
func NewUI(out io.Writer, emojiEnabled bool) UserInterface {
	return consoleUI{console: NewConsole(out, emojiEnabled)}
}

type consoleUI struct {
	console *Console
}

func (u consoleUI) Info(msg string) {
	u.console.Info(msg)
}

func (u consoleUI) Warn(msg string) {
	u.console.Warn(msg)
}

func (u consoleUI) Success(msg string) {
	u.console.Success(msg)
}

func (u consoleUI) Block(emoji, title string, rows []KeyValue) {
	u.console.BlockStart(emoji, title)
	for _, kv := range rows {
		u.console.Item(kv.Key, kv.Value)
	}
	u.console.BlockEnd()
}

// List prints a block of plain indented lines, e.g. the files a run wrote.
func (u consoleUI) List(emoji, title string, lines []string) {
	u.console.BlockStart(emoji, title)
	for _, line := range lines {
		u.console.ItemPlain(line)
	}
	u.console.BlockEnd()
}

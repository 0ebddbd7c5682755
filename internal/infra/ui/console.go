// Where: internal/infra/ui/console.go
// What: Console output helpers for generation summaries.
// Why: Keep emoji, indentation and block spacing identical across commands.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// Console writes formatted lines to Out.
type Console struct {
	Out          io.Writer
	EmojiEnabled bool
}

// NewConsole creates a Console. Emoji can be turned off for logs and pipes.
func NewConsole(out io.Writer, emojiEnabled bool) *Console {
	return &Console{Out: out, EmojiEnabled: emojiEnabled}
}

// Header prints a section title, e.g. "📦 Layers".
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.emojiPrefix(emoji), title)
}

// BlockStart opens a block with a blank line before its header.
func (c *Console) BlockStart(emoji, title string) {
	fmt.Fprintln(c.Out)
	c.Header(emoji, title)
}

func (c *Console) BlockEnd() {
	fmt.Fprintln(c.Out)
}

// Item prints an aligned key/value row inside a block.
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-30s %v\n", key+":", value)
}

// ItemPlain prints an indented line inside a block.
func (c *Console) ItemPlain(msg string) {
	fmt.Fprintf(c.Out, "   %s\n", msg)
}

func (c *Console) Success(msg string) {
	c.prefixed("✅", "[ok] ", msg)
}

func (c *Console) Warn(msg string) {
	c.prefixed("⚠️", "[warn] ", msg)
}

func (c *Console) Info(msg string) {
	fmt.Fprintln(c.Out, msg)
}

func (c *Console) prefixed(emoji, fallback, msg string) {
	prefix := c.emojiPrefix(emoji)
	if prefix == "" {
		prefix = fallback
	}
	fmt.Fprintf(c.Out, "%s%s\n", prefix, msg)
}

func (c *Console) emojiPrefix(emoji string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return ""
	}
	return emoji + " "
}

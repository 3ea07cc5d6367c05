package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// colorizer handles terminal color output.
type colorizer struct {
	enabled bool
}

// newColorizer creates a colorizer that detects terminal capability.
// Colors are disabled if output is not a terminal or NO_COLOR is set.
func newColorizer(w io.Writer) *colorizer {
	enabled := false
	if f, ok := w.(*os.File); ok {
		enabled = term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == ""
	}
	return &colorizer{enabled: enabled}
}

func (c *colorizer) paint(code, s string) string {
	if c.enabled {
		return "\033[" + code + "m" + s + "\033[0m"
	}
	return s
}

func (c *colorizer) green(s string) string  { return c.paint("32", s) }
func (c *colorizer) red(s string) string    { return c.paint("31", s) }
func (c *colorizer) yellow(s string) string { return c.paint("33", s) }
func (c *colorizer) bold(s string) string   { return c.paint("1", s) }
func (c *colorizer) dim(s string) string    { return c.paint("2", s) }
func (c *colorizer) cyan(s string) string   { return c.paint("36", s) }

// formatValue formats a value for display, quoting if it contains
// whitespace or is empty.
func formatValue(value string) string {
	if value == "" || strings.ContainsAny(value, " \t\n") {
		return fmt.Sprintf("%q", value)
	}
	return value
}

package ui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/roboticarm/internal/config"
)

// Color definitions for consistent styling across the CLI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Values: cyan
	colorValue = color.New(color.FgCyan)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Success: green
	colorSuccess = color.New(color.FgGreen)
)

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled resolves the color setting for output written to w.
func (a *App) colorEnabled(w io.Writer) bool {
	if a.noColor {
		return false
	}
	switch a.config.UI.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return os.Getenv("NO_COLOR") == "" && isTerminal(w)
	}
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatValue formats a config value.
func formatValue(s string) string {
	return colorValue.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatSuccess formats a confirmation.
func formatSuccess(s string) string {
	return colorSuccess.Sprint(s)
}

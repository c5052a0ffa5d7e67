// Package theme provides color themes for the slot display.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a display theme. Empty values mean the
// terminal default.
type Theme struct {
	Name    string `toml:"name"`
	Fg      string `toml:"fg"`       // Primary foreground
	FgMuted string `toml:"fg_muted"` // Slot indexes, hints
	Accent  string `toml:"accent"`   // Headers, echoed commands
	Block   string `toml:"block"`    // Block glyphs
	Warning string `toml:"warning"`  // Undo/replay notices
	Error   string `toml:"error"`    // Rejected commands
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		// Fallback to mocha
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

func (t *Theme) applyDefaults() {
	if t.Block == "" {
		t.Block = t.Accent
	}
	if t.Warning == "" {
		t.Warning = t.Accent
	}
	if t.Error == "" {
		t.Error = t.Warning
	}
}

// Default returns the mocha theme, or an uncoloured one if it cannot be read.
func Default() *Theme {
	return orPlain(Load("mocha"))
}

func orPlain(t *Theme, err error) *Theme {
	if err != nil || t == nil {
		return &Theme{Name: "mono"}
	}
	return t
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte", "mono"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}

// Styles holds the lipgloss styles derived from a Theme for one renderer.
type Styles struct {
	Index   lipgloss.Style
	Block   lipgloss.Style
	Header  lipgloss.Style
	Command lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles builds styles for t bound to renderer r. A nil theme loads
// the default one.
func NewStyles(t *Theme, r *lipgloss.Renderer) Styles {
	if t == nil {
		t = Default()
	}
	base := r.NewStyle()
	return Styles{
		Index:   withFg(base, t.FgMuted),
		Block:   withFg(base, t.Block).Bold(true),
		Header:  withFg(base, t.Accent).Bold(true),
		Command: withFg(base, t.Accent),
		Warning: withFg(base, t.Warning),
		Error:   withFg(base, t.Error).Bold(true),
		Muted:   withFg(base, t.FgMuted).Faint(t.FgMuted == ""),
	}
}

func withFg(s lipgloss.Style, hex string) lipgloss.Style {
	if hex == "" {
		return s
	}
	return s.Foreground(lipgloss.Color(hex))
}

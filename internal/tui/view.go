package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/roboticarm/internal/shell"
)

const (
	title    = "ROBOTIC ARM"
	keysHelp = "enter run · ctrl+z undo · ctrl+r replay · ctrl+y copy · ? help · esc quit"

	// title, blank, blank, status, prompt, keys
	chromeLines = 6
)

// View renders the interface.
func (m Model) View() string {
	var sections []string
	sections = append(sections, m.styles.Header.Render(title), "")

	body := m.slotLines()
	if m.showHelp {
		body = m.helpLines()
	}
	sections = append(sections, body...)
	sections = append(sections, "")
	sections = append(sections, m.logLines(len(body))...)
	sections = append(sections, m.statusLine(), m.prompt.View(), m.styles.Muted.Render(keysHelp))

	if m.width > 0 {
		for i, s := range sections {
			sections[i] = ansi.Truncate(s, m.width, "…")
		}
	}
	return strings.Join(sections, "\n")
}

func (m Model) slotLines() []string {
	if !m.started {
		return []string{m.styles.Muted.Render("Enter the size to begin")}
	}
	lines := make([]string, len(m.events.slots))
	for i, n := range m.events.slots {
		index := m.styles.Index.Render(fmt.Sprintf("%d:", i))
		blocks := m.styles.Block.Render(strings.Repeat(m.block, n))
		lines[i] = index + " " + blocks
	}
	return lines
}

func (m Model) helpLines() []string {
	docs := shell.Commands()
	column := m.styles.Command.Width(22)
	lines := make([]string, len(docs))
	for i, d := range docs {
		lines[i] = column.Render(d.Usage) + d.Description
	}
	return lines
}

// logLines returns as many recent events as fit below the body.
func (m Model) logLines(bodyLines int) []string {
	lines := m.events.lines
	limit := 10
	if m.height > 0 {
		limit = m.height - chromeLines - bodyLines
	}
	if limit <= 0 {
		return nil
	}
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		style := m.styles.Muted
		if strings.HasPrefix(l, "error") {
			style = m.styles.Error
		}
		out[i] = style.Render(l)
	}
	return out
}

func (m Model) statusLine() string {
	counts := fmt.Sprintf("history %d · undone %d", len(m.engine.History()), m.engine.Undone())
	if m.statusMsg == "" {
		return m.styles.Muted.Render(counts)
	}
	return m.styles.Warning.Render(m.statusMsg) + "  " + m.styles.Muted.Render(counts)
}

// slotsText is the plain slot listing used for copying.
func (m Model) slotsText() string {
	var b strings.Builder
	for i, n := range m.events.slots {
		fmt.Fprintf(&b, "%d: %s\n", i, strings.Repeat(m.block, n))
	}
	return b.String()
}

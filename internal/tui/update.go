package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/roboticarm/internal/arm"
	"github.com/javiermolinar/roboticarm/internal/shell"
)

const msgSizeMust = "You must enter the size to begin"

// clearStatusMsg clears the status line once it has expired.
type clearStatusMsg struct{}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.Width = max(0, msg.Width-len(m.prompt.Prompt)-1)
		return m, nil

	case clearStatusMsg:
		if m.now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		line := strings.TrimSpace(m.prompt.Value())
		m.prompt.Reset()
		if line != "" {
			m.lastLine = line
		}
		return m.submit(line)
	case "up":
		if m.lastLine != "" {
			m.prompt.SetValue(m.lastLine)
			m.prompt.CursorEnd()
		}
		return m, nil
	case "ctrl+z":
		return m.run(arm.Undo(1))
	case "ctrl+r":
		return m.run(arm.Replay(1))
	case "ctrl+y":
		return m.copySlots()
	case "?":
		if m.prompt.Value() == "" {
			m.showHelp = !m.showHelp
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// submit parses one prompt line and acts on it.
func (m Model) submit(line string) (tea.Model, tea.Cmd) {
	in, err := shell.Parse(line)
	if err != nil {
		m.log.Info("input rejected", "line", line, "error", err)
		if !m.started && !shell.IsSizeLine(line) {
			tick := m.setStatus(msgSizeMust)
			return m, tick
		}
		if errors.Is(err, shell.ErrUnknownCommand) {
			if fields := strings.Fields(line); len(fields) > 0 {
				if matches := shell.Suggest(fields[0]); len(matches) > 0 {
					cmd := m.setStatus(fmt.Sprintf("%v. Did you mean: %s?", err, strings.Join(matches, ", ")))
					return m, cmd
				}
			}
		}
		cmd := m.setStatus(err.Error())
		return m, cmd
	}

	switch in.Action {
	case shell.ActionExit:
		return m, tea.Quit
	case shell.ActionHelp:
		m.showHelp = !m.showHelp
		return m, nil
	case shell.ActionRun:
		return m.run(in.Command)
	}
	return m, nil
}

// run executes cmd on the engine once the arm has been sized.
func (m Model) run(cmd arm.Command) (tea.Model, tea.Cmd) {
	if !m.started && cmd.Kind != arm.KindSize {
		tick := m.setStatus(msgSizeMust)
		return m, tick
	}

	m.events.add("> " + cmd.String())
	result, err := m.engine.Execute(cmd)
	if err != nil {
		m.log.Info("command rejected", "command", cmd.String(), "error", err)
		tick := m.setStatus(err.Error())
		return m, tick
	}
	if cmd.Kind == arm.KindSize {
		m.started = true
	}
	m.log.Info("command dispatched", "command", cmd.String(), "result", result,
		"slots", m.engine.Slots())
	return m, nil
}

func (m Model) copySlots() (tea.Model, tea.Cmd) {
	if !m.started {
		cmd := m.setStatus("Nothing to copy")
		return m, cmd
	}
	if err := m.copy(m.slotsText()); err != nil {
		cmd := m.setStatus(fmt.Sprintf("Copy failed: %v", err))
		return m, cmd
	}
	cmd := m.setStatus("Copied slots")
	return m, cmd
}

// setStatus shows msg and schedules it to clear.
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusTime = m.now().Add(statusTTL)
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

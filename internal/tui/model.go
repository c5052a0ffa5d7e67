// Package tui provides the full-screen terminal interface for the arm.
package tui

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/roboticarm/internal/arm"
	"github.com/javiermolinar/roboticarm/internal/theme"
)

const (
	statusTTL   = 3 * time.Second
	maxLogLines = 200
)

// Options configures the interface.
type Options struct {
	Theme        *theme.Theme // nil loads the default theme
	Color        bool
	Block        string // glyph per block, defaults to "X"
	Prompt       string
	LegacyResize bool
	Logger       *slog.Logger // nil discards
}

// Model is the bubbletea model wrapping one arm engine.
type Model struct {
	engine *arm.Engine
	events *eventLog // engine observer, shared across model copies
	log    *slog.Logger

	styles theme.Styles
	block  string

	prompt   textinput.Model
	lastLine string // recalled with up
	started  bool   // a size has succeeded
	showHelp bool

	width  int
	height int

	statusMsg  string
	statusTime time.Time

	copy func(string) error
	now  func() time.Time
}

// New creates a model with an empty engine.
func New(opts Options) Model {
	r := lipgloss.NewRenderer(os.Stdout)
	if opts.Color {
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI256)
		}
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	if opts.Block == "" {
		opts.Block = "X"
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ti := textinput.New()
	ti.Prompt = opts.Prompt
	ti.Placeholder = "size <n>"
	ti.CharLimit = 64
	ti.Focus()

	events := &eventLog{}
	return Model{
		engine: arm.New(arm.Options{LegacyResize: opts.LegacyResize}, events),
		events: events,
		log:    logger,
		styles: theme.NewStyles(opts.Theme, r),
		block:  opts.Block,
		prompt: ti,
		copy:   clipboard.WriteAll,
		now:    time.Now,
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Engine returns the engine driven by the model.
func (m Model) Engine() *arm.Engine {
	return m.engine
}

// Run starts the interface and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// eventLog collects engine events as display lines.
type eventLog struct {
	slots []int
	lines []string
}

var _ arm.Observer = (*eventLog)(nil)

func (l *eventLog) StateChanged(slots []int) {
	l.slots = slots
}

func (l *eventLog) Undoing(cmd arm.Command) {
	l.add("undo   " + cmd.String())
}

func (l *eventLog) Replaying(cmd arm.Command) {
	l.add("replay " + cmd.String())
}

func (l *eventLog) Rejected(cmd arm.Command, err error) {
	l.add("error  " + cmd.String() + ": " + err.Error())
}

func (l *eventLog) add(line string) {
	l.lines = append(l.lines, line)
	if over := len(l.lines) - maxLogLines; over > 0 {
		l.lines = l.lines[over:]
	}
}

package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/roboticarm/internal/arm"
	"github.com/javiermolinar/roboticarm/internal/theme"
)

const usageColumnWidth = 22

// Printer renders engine events and session messages as text. It
// implements arm.Observer.
type Printer struct {
	w      io.Writer
	styles theme.Styles
	block  string
}

var _ arm.Observer = (*Printer)(nil)

// PrinterOptions configures a Printer.
type PrinterOptions struct {
	Theme *theme.Theme // nil loads the default theme
	Color bool         // false renders plain text
	Block string       // glyph per block, defaults to "X"
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, opts PrinterOptions) *Printer {
	r := lipgloss.NewRenderer(w)
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
	return &Printer{
		w:      w,
		styles: theme.NewStyles(opts.Theme, r),
		block:  opts.Block,
	}
}

// StateChanged prints one line per slot: its index and a run of block glyphs.
func (p *Printer) StateChanged(slots []int) {
	for i, n := range slots {
		index := p.styles.Index.Render(fmt.Sprintf("%d:", i))
		blocks := p.styles.Block.Render(strings.Repeat(p.block, n))
		fmt.Fprintf(p.w, "%s %s\n", index, blocks)
	}
}

// Undoing announces the command about to be rolled back.
func (p *Printer) Undoing(cmd arm.Command) {
	fmt.Fprintf(p.w, "%s\n\n", p.styles.Warning.Render("Undoing "+cmd.String()))
}

// Replaying echoes the command about to run again.
func (p *Printer) Replaying(cmd arm.Command) {
	fmt.Fprintf(p.w, "\n%s\n\n", p.styles.Command.Render("> "+cmd.String()))
}

// Rejected prints why the engine refused a command.
func (p *Printer) Rejected(_ arm.Command, err error) {
	p.Error(err.Error())
}

// Error prints a failure message.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.w, p.styles.Error.Render(msg))
}

// Notice prints an informational message.
func (p *Printer) Notice(msg string) {
	fmt.Fprintln(p.w, p.styles.Warning.Render(msg))
}

// Header prints a title line.
func (p *Printer) Header(msg string) {
	fmt.Fprintln(p.w, p.styles.Header.Render(msg))
}

// Hint prints a muted helper line.
func (p *Printer) Hint(msg string) {
	fmt.Fprintln(p.w, p.styles.Muted.Render(msg))
}

// Line prints msg unstyled.
func (p *Printer) Line(msg string) {
	fmt.Fprintln(p.w, msg)
}

// Usage prints the list of valid commands.
func (p *Printer) Usage() {
	column := p.styles.Command.Width(usageColumnWidth)
	for _, doc := range commandDocs {
		fmt.Fprintf(p.w, "%s%s\n", column.Render(doc.Usage), doc.Description)
	}
}

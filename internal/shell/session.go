package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/javiermolinar/roboticarm/internal/arm"
)

// Session messages.
const (
	msgTitle    = "ROBOTIC ARM"
	msgStart    = "Enter the size to begin"
	msgHint     = "HINT: size <n>"
	msgSizeMust = "You must enter the size to begin. Please try again"
	msgGoodbye  = "Thank you for playing!"
	msgReplay   = "Replaying"
)

// Options configures a Session.
type Options struct {
	Prompt string
	// Echo writes every line read back after the prompt, for input that
	// does not come from a terminal.
	Echo   bool
	Logger *slog.Logger // nil discards
}

// Session runs the prompt loop: the first accepted command must be a
// successful size, after which every command is available until exit.
type Session struct {
	engine  *arm.Engine
	printer *Printer
	in      *bufio.Scanner
	out     io.Writer
	opts    Options
	log     *slog.Logger
	started bool // a size has succeeded
}

// NewSession creates a session reading commands from in. The printer must
// be the engine's observer for state output to appear.
func NewSession(engine *arm.Engine, printer *Printer, in io.Reader, out io.Writer, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		engine:  engine,
		printer: printer,
		in:      bufio.NewScanner(in),
		out:     out,
		opts:    opts,
		log:     logger,
		started: engine.Sized(),
	}
}

// Run plays until exit or end of input. Bad input never ends the session.
func (s *Session) Run(ctx context.Context) error {
	s.log.Info("session start")
	defer s.log.Info("session end", "history", len(s.engine.History()), "slots", s.engine.Len())

	s.printer.Header(msgTitle)
	s.printer.Line("")
	s.printer.Line(msgStart)
	s.printer.Hint(msgHint)

	for {
		line, ok, err := s.readLine(ctx)
		if err != nil || !ok {
			return err
		}
		done, err := s.handle(line)
		if err != nil || done {
			return err
		}
	}
}

// readLine prompts and reads the next line. ok is false at end of input.
func (s *Session) readLine(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	fmt.Fprint(s.out, s.opts.Prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", false, fmt.Errorf("reading input: %w", err)
		}
		fmt.Fprintln(s.out)
		return "", false, nil
	}
	line := strings.TrimSpace(s.in.Text())
	if s.opts.Echo {
		fmt.Fprintln(s.out, line)
	}
	return line, true, nil
}

// handle processes one line and reports whether the session is over.
func (s *Session) handle(line string) (bool, error) {
	in, err := Parse(line)
	if err != nil {
		s.log.Info("input rejected", "line", line, "error", err)
		if !s.started && !IsSizeLine(line) {
			s.requireSize()
		} else {
			s.reportParseError(line, err)
		}
		return false, nil
	}

	switch in.Action {
	case ActionNone:
		return false, nil
	case ActionExit:
		s.printer.Line(msgGoodbye)
		return true, nil
	case ActionHelp:
		s.printer.Line("")
		s.printer.Usage()
		s.printer.Line("")
		return false, nil
	}

	if !s.started && in.Command.Kind != arm.KindSize {
		s.log.Info("input rejected", "line", line, "error", "not sized")
		s.requireSize()
		return false, nil
	}

	s.printer.Line("")
	if in.Command.Kind == arm.KindReplay {
		s.printer.Notice(msgReplay)
	}
	result, err := s.engine.Execute(in.Command)
	if err != nil {
		s.log.Info("command rejected", "command", in.Command.String(), "error", err)
	} else {
		if in.Command.Kind == arm.KindSize {
			s.started = true
		}
		s.log.Info("command dispatched", "command", in.Command.String(), "result", result,
			"recorded", in.Command.Kind.Mutating(), "slots", s.engine.Slots())
	}
	s.printer.Line("")
	return false, nil
}

func (s *Session) requireSize() {
	s.printer.Error(msgSizeMust)
	s.printer.Hint(msgHint)
}

func (s *Session) reportParseError(line string, err error) {
	s.printer.Line("")
	switch {
	case errors.Is(err, ErrUnknownCommand):
		s.printer.Error("Invalid Command. Please try again")
		if fields := strings.Fields(line); len(fields) > 0 {
			if matches := Suggest(fields[0]); len(matches) > 0 {
				s.printer.Hint("Did you mean: " + strings.Join(matches, ", ") + "?")
			}
		}
		s.printer.Usage()
	case errors.Is(err, ErrUsage):
		s.printer.Error(capitalize(err.Error()) + ". Please try again")
		s.printer.Usage()
	default:
		s.printer.Error(err.Error())
	}
	s.printer.Line("")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

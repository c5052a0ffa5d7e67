// Package shell is the line-oriented front end of the arm: it turns typed
// lines into commands, runs them against an engine and prints the results.
package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/javiermolinar/roboticarm/internal/arm"
)

// Parse errors. Numbers that are not whole non-negative literals are
// reported as arm.ErrInvalidArgument.
var (
	ErrUnknownCommand = errors.New("invalid command")
	ErrUsage          = errors.New("wrong number of parameters")
)

// Action is what the session should do with a parsed line.
type Action int

const (
	ActionNone Action = iota // blank line
	ActionRun                // run Input.Command on the engine
	ActionHelp
	ActionExit
)

// Input is one parsed line.
type Input struct {
	Action  Action
	Command arm.Command
}

// Parse splits line on whitespace and maps it onto the closed command set.
// Command names are case-insensitive.
func Parse(line string) (Input, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Input{Action: ActionNone}, nil
	}

	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "exit", "quit":
		if len(args) > 0 {
			return Input{}, fmt.Errorf("%w for %s: got %d, want 0", ErrUsage, verb, len(args))
		}
		return Input{Action: ActionExit}, nil
	case "help":
		return Input{Action: ActionHelp}, nil
	}

	kind := arm.Kind(verb)
	if !kind.Valid() {
		return Input{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}

	maxArgs := kind.Arity()
	if kind == arm.KindSize {
		maxArgs++ // optional persist flag
	}
	if len(args) < kind.Arity() || len(args) > maxArgs {
		want := strconv.Itoa(kind.Arity())
		if maxArgs > kind.Arity() {
			want += " or " + strconv.Itoa(maxArgs)
		}
		return Input{}, fmt.Errorf("%w for %s: got %d, want %s", ErrUsage, kind, len(args), want)
	}

	cmd := arm.Command{Kind: kind, Args: make([]int, kind.Arity())}
	for i := range cmd.Args {
		n, err := parseNumber(args[i])
		if err != nil {
			return Input{}, err
		}
		cmd.Args[i] = n
	}
	if kind == arm.KindSize && len(args) == 2 {
		persist, err := parsePersist(args[1])
		if err != nil {
			return Input{}, err
		}
		cmd.Persist = persist
	}

	return Input{Action: ActionRun, Command: cmd}, nil
}

// IsSizeLine reports whether line starts with the size verb, whatever
// its arguments.
func IsSizeLine(line string) bool {
	fields := strings.Fields(line)
	return len(fields) > 0 && arm.Kind(strings.ToLower(fields[0])) == arm.KindSize
}

// parseNumber accepts only plain digit strings, so signs, spaces and
// decimals are rejected.
func parseNumber(s string) (int, error) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, fmt.Errorf("%w: %q is not a whole number", arm.ErrInvalidArgument, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is too large", arm.ErrInvalidArgument, s)
	}
	return n, nil
}

func parsePersist(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "persist", "keep":
		return true, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: persist flag %q must be true, false or persist", arm.ErrInvalidArgument, s)
	}
	return b, nil
}

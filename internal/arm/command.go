package arm

import (
	"strconv"
	"strings"
)

// Kind identifies one of the commands the arm understands.
type Kind string

const (
	KindSize   Kind = "size"
	KindAdd    Kind = "add"
	KindMove   Kind = "mv"
	KindRemove Kind = "rm"
	KindUndo   Kind = "undo"
	KindReplay Kind = "replay"
)

// Kinds returns every command kind in display order.
func Kinds() []Kind {
	return []Kind{KindSize, KindAdd, KindMove, KindRemove, KindReplay, KindUndo}
}

// Arity returns the number of required integer arguments for the kind.
func (k Kind) Arity() int {
	switch k {
	case KindMove:
		return 2
	case KindSize, KindAdd, KindRemove, KindUndo, KindReplay:
		return 1
	default:
		return 0
	}
}

// Mutating reports whether commands of this kind are recorded in history.
func (k Kind) Mutating() bool {
	switch k {
	case KindSize, KindAdd, KindMove, KindRemove:
		return true
	default:
		return false
	}
}

// Valid reports whether k is a known command kind.
func (k Kind) Valid() bool {
	return k.Arity() > 0
}

// Command is a single invocation of the arm with its raw arguments.
type Command struct {
	Kind    Kind
	Args    []int
	Persist bool // size only
}

// Size builds a size command.
func Size(count int, persist bool) Command {
	return Command{Kind: KindSize, Args: []int{count}, Persist: persist}
}

// Add builds an add command.
func Add(key int) Command {
	return Command{Kind: KindAdd, Args: []int{key}}
}

// Move builds a mv command.
func Move(from, to int) Command {
	return Command{Kind: KindMove, Args: []int{from, to}}
}

// Remove builds an rm command.
func Remove(key int) Command {
	return Command{Kind: KindRemove, Args: []int{key}}
}

// Undo builds an undo command.
func Undo(n int) Command {
	return Command{Kind: KindUndo, Args: []int{n}}
}

// Replay builds a replay command.
func Replay(n int) Command {
	return Command{Kind: KindReplay, Args: []int{n}}
}

// String renders the command the way it would be typed at the prompt.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+2)
	parts = append(parts, string(c.Kind))
	for _, a := range c.Args {
		parts = append(parts, strconv.Itoa(a))
	}
	if c.Kind == KindSize && c.Persist {
		parts = append(parts, "persist")
	}
	return strings.Join(parts, " ")
}

func (c Command) clone() Command {
	c.Args = append([]int(nil), c.Args...)
	return c
}

// Package arm implements the robotic arm: a row of numbered slots holding
// stacks of blocks, with a command history that supports undo and replay.
package arm

import (
	"errors"
	"fmt"
	"slices"
)

// Engine errors.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidSlot     = errors.New("invalid slot")
	ErrEmptySlot       = errors.New("slot is empty")
)

// HistoryEntry records one executed mutating command and the slots as they
// were immediately before it ran.
type HistoryEntry struct {
	Command  Command
	Previous []int
}

// Options tunes engine behaviour.
type Options struct {
	// LegacyResize makes a persistent grow append one slot more than asked,
	// matching the behaviour of the first arm controller.
	LegacyResize bool
}

// Engine owns the slot state and its history. It is not safe for
// concurrent use.
type Engine struct {
	opts    Options
	obs     Observer
	slots   []int
	history []HistoryEntry

	// Entries rolled back by Undo, next to redo on top. Cleared by any new
	// command that is not itself a replay.
	undone    []HistoryEntry
	replaying bool
}

// New creates an engine with no slots and an empty history.
// A nil observer discards all events.
func New(opts Options, obs Observer) *Engine {
	if obs == nil {
		obs = NopObserver{}
	}
	return &Engine{opts: opts, obs: obs}
}

// Slots returns a copy of the current slot counts.
func (e *Engine) Slots() []int {
	return slices.Clone(e.slots)
}

// Len returns the number of slots.
func (e *Engine) Len() int {
	return len(e.slots)
}

// Sized reports whether size has succeeded at least once.
func (e *Engine) Sized() bool {
	return len(e.slots) > 0
}

// Undone returns how many undone commands are waiting to be replayed.
func (e *Engine) Undone() int {
	return len(e.undone)
}

// History returns a copy of the recorded history, oldest first.
func (e *Engine) History() []HistoryEntry {
	out := make([]HistoryEntry, len(e.history))
	for i, h := range e.history {
		out[i] = HistoryEntry{Command: h.Command.clone(), Previous: slices.Clone(h.Previous)}
	}
	return out
}

// Execute dispatches cmd to the matching operation. For size, add, mv and
// rm it returns what the operation returns; for undo and replay it returns
// the history length afterwards.
func (e *Engine) Execute(cmd Command) (int, error) {
	if !cmd.Kind.Valid() {
		return 0, e.reject(cmd, fmt.Errorf("%w: unknown command %q", ErrInvalidArgument, cmd.Kind))
	}
	if len(cmd.Args) != cmd.Kind.Arity() {
		return 0, e.reject(cmd, fmt.Errorf("%w: %s takes %d argument(s), got %d",
			ErrInvalidArgument, cmd.Kind, cmd.Kind.Arity(), len(cmd.Args)))
	}

	switch cmd.Kind {
	case KindSize:
		return e.Size(cmd.Args[0], cmd.Persist)
	case KindAdd:
		return e.Add(cmd.Args[0])
	case KindMove:
		return e.Move(cmd.Args[0], cmd.Args[1])
	case KindRemove:
		return e.Remove(cmd.Args[0])
	case KindUndo:
		err := e.Undo(cmd.Args[0])
		return len(e.history), err
	default: // KindReplay
		err := e.Replay(cmd.Args[0])
		return len(e.history), err
	}
}

// Size sets the number of slots and returns it. Without persist every slot
// is reset to empty. With persist existing blocks are kept; shrinking drops
// the trailing slots together with their blocks.
func (e *Engine) Size(count int, persist bool) (int, error) {
	cmd := Size(count, persist)
	if count <= 0 {
		return 0, e.reject(cmd, fmt.Errorf("%w: size must be greater than 0, got %d", ErrInvalidArgument, count))
	}

	previous := slices.Clone(e.slots)

	switch {
	case !persist:
		e.slots = make([]int, count)
	case count > len(e.slots):
		grow := count - len(e.slots)
		if e.opts.LegacyResize {
			grow++
		}
		e.slots = append(e.slots, make([]int, grow)...)
	case count < len(e.slots):
		e.slots = slices.Clip(e.slots[:count])
	}

	e.record(cmd, previous)
	return len(e.slots), nil
}

// Add puts one block on slot key and returns the new block count.
func (e *Engine) Add(key int) (int, error) {
	cmd := Add(key)
	if !e.exists(key) {
		return 0, e.reject(cmd, fmt.Errorf("%w: slot %d does not exist", ErrInvalidSlot, key))
	}

	previous := slices.Clone(e.slots)
	e.slots[key]++

	e.record(cmd, previous)
	return e.slots[key], nil
}

// Move takes one block from slot from and puts it on slot to. It returns
// the new block count of the destination.
func (e *Engine) Move(from, to int) (int, error) {
	cmd := Move(from, to)
	if !e.exists(from) {
		return 0, e.reject(cmd, fmt.Errorf("%w: from slot %d does not exist", ErrInvalidSlot, from))
	}
	if e.slots[from] == 0 {
		return 0, e.reject(cmd, fmt.Errorf("%w: from slot %d has no blocks", ErrEmptySlot, from))
	}
	if !e.exists(to) {
		return 0, e.reject(cmd, fmt.Errorf("%w: to slot %d does not exist", ErrInvalidSlot, to))
	}

	previous := slices.Clone(e.slots)
	e.slots[from]--
	e.slots[to]++

	e.record(cmd, previous)
	return e.slots[to], nil
}

// Remove takes one block off slot key and returns what is left. Removing
// from an empty slot is allowed and leaves it at zero.
func (e *Engine) Remove(key int) (int, error) {
	cmd := Remove(key)
	if !e.exists(key) {
		return 0, e.reject(cmd, fmt.Errorf("%w: slot %d does not exist", ErrInvalidSlot, key))
	}

	previous := slices.Clone(e.slots)
	e.slots[key] = max(0, e.slots[key]-1)

	e.record(cmd, previous)
	return e.slots[key], nil
}

// Undo rolls back the last n commands, most recent first, reporting the
// state after every step. Asking for more than the history holds undoes
// everything.
func (e *Engine) Undo(n int) error {
	if n < 0 {
		return e.reject(Undo(n), fmt.Errorf("%w: undo count must not be negative, got %d", ErrInvalidArgument, n))
	}

	for i, k := 0, min(n, len(e.history)); i < k; i++ {
		entry := e.pop()
		e.obs.Undoing(entry.Command)
		e.slots = slices.Clone(entry.Previous)
		e.undone = append(e.undone, entry)
		e.emit()
	}
	return nil
}

// Replay runs up to n commands again as fresh calls, oldest first. Each
// re-run is validated again and recorded as a new history entry; a re-run
// that fails is reported and skipped.
//
// Commands rolled back by Undo are replayed first, so undo followed by
// replay of the same count lands where the undo started. With nothing
// undone, the last n history entries are rolled back silently and then run
// again.
func (e *Engine) Replay(n int) error {
	if n < 0 {
		return e.reject(Replay(n), fmt.Errorf("%w: replay count must not be negative, got %d", ErrInvalidArgument, n))
	}

	var queue []Command
	if len(e.undone) > 0 {
		for i, k := 0, min(n, len(e.undone)); i < k; i++ {
			last := len(e.undone) - 1
			queue = append(queue, e.undone[last].Command)
			e.undone[last] = HistoryEntry{}
			e.undone = e.undone[:last]
		}
	} else {
		k := min(n, len(e.history))
		queue = make([]Command, k)
		for i := k - 1; i >= 0; i-- {
			entry := e.pop()
			e.slots = entry.Previous
			queue[i] = entry.Command
		}
	}

	e.replaying = true
	defer func() { e.replaying = false }()
	for _, cmd := range queue {
		e.obs.Replaying(cmd)
		_, _ = e.Execute(cmd)
	}
	return nil
}

func (e *Engine) exists(key int) bool {
	return key >= 0 && key < len(e.slots)
}

// record appends a history entry and reports the new state.
func (e *Engine) record(cmd Command, previous []int) {
	e.history = append(e.history, HistoryEntry{Command: cmd, Previous: previous})
	if !e.replaying {
		e.undone = nil
	}
	e.emit()
}

func (e *Engine) pop() HistoryEntry {
	last := len(e.history) - 1
	entry := e.history[last]
	e.history[last] = HistoryEntry{}
	e.history = e.history[:last]
	return entry
}

func (e *Engine) emit() {
	e.obs.StateChanged(slices.Clone(e.slots))
}

func (e *Engine) reject(cmd Command, err error) error {
	e.obs.Rejected(cmd, err)
	return err
}

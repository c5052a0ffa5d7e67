package arm

import "slices"

// Observer receives everything the engine has to say while it works.
// The engine never prints; the shell decides how events are shown.
type Observer interface {
	// StateChanged is called after every successful mutation and after
	// each step of an undo, with a copy of the current slots.
	StateChanged(slots []int)
	// Undoing is called before a history entry is rolled back by undo.
	Undoing(cmd Command)
	// Replaying is called before a command is executed again by replay.
	Replaying(cmd Command)
	// Rejected is called when a command fails validation.
	Rejected(cmd Command, err error)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) StateChanged([]int)      {}
func (NopObserver) Undoing(Command)         {}
func (NopObserver) Replaying(Command)       {}
func (NopObserver) Rejected(Command, error) {}

// EventType tags a recorded observer event.
type EventType int

const (
	EventStateChanged EventType = iota
	EventUndoing
	EventReplaying
	EventRejected
)

// Event is one observer callback captured by a Recorder.
type Event struct {
	Type    EventType
	Slots   []int
	Command Command
	Err     error
}

// Recorder is an Observer that keeps every event in order.
type Recorder struct {
	Events []Event
}

func (r *Recorder) StateChanged(slots []int) {
	r.Events = append(r.Events, Event{Type: EventStateChanged, Slots: slices.Clone(slots)})
}

func (r *Recorder) Undoing(cmd Command) {
	r.Events = append(r.Events, Event{Type: EventUndoing, Command: cmd.clone()})
}

func (r *Recorder) Replaying(cmd Command) {
	r.Events = append(r.Events, Event{Type: EventReplaying, Command: cmd.clone()})
}

func (r *Recorder) Rejected(cmd Command, err error) {
	r.Events = append(r.Events, Event{Type: EventRejected, Command: cmd.clone(), Err: err})
}

// States returns the slot snapshots of all StateChanged events.
func (r *Recorder) States() [][]int {
	var states [][]int
	for _, e := range r.Events {
		if e.Type == EventStateChanged {
			states = append(states, e.Slots)
		}
	}
	return states
}

// Count returns how many events of the given type were recorded.
func (r *Recorder) Count(t EventType) int {
	n := 0
	for _, e := range r.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}

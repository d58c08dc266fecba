package menagerie

import (
	"fmt"

	"github.com/vovakirdan/menagerie/internal/core"
)

// EventKind distinguishes scheduled moves from keystroke commands.
type EventKind int

const (
	// EventMove asks the critter in roster slot Data to move.
	EventMove EventKind = iota
	// EventCommand carries the key code Data typed by the user.
	EventCommand
)

// Event is one entry of the scheduling queue.
type Event struct {
	Kind EventKind
	Data int
}

// MoveEvent schedules a move for roster slot index.
func MoveEvent(index int) Event {
	return Event{Kind: EventMove, Data: index}
}

// CommandEvent wraps a keystroke.
func CommandEvent(key int) Event {
	return Event{Kind: EventCommand, Data: key}
}

func (e Event) String() string {
	if e.Kind == EventMove {
		return fmt.Sprintf("MOVE(%d)", e.Data)
	}
	return fmt.Sprintf("COMMAND(%s)", core.KeyName(e.Data))
}

// Queue is a first-in first-out event queue.
type Queue struct {
	items []Event
	head  int
}

// Enqueue appends e to the back of the queue.
func (q *Queue) Enqueue(e Event) {
	q.items = append(q.items, e)
}

// Dequeue removes and returns the front event.
func (q *Queue) Dequeue() (Event, bool) {
	if q.head >= len(q.items) {
		return Event{}, false
	}
	e := q.items[q.head]
	q.head++

	// Reclaim the consumed prefix once it dominates the backing array
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	} else if q.head > 32 && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return e, true
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.items) - q.head
}

// Empty reports whether the queue holds no events.
func (q *Queue) Empty() bool {
	return q.Len() == 0
}

// Clear drops every queued event.
func (q *Queue) Clear() {
	q.items = q.items[:0]
	q.head = 0
}

// Pending returns a copy of the queued events, front first.
func (q *Queue) Pending() []Event {
	out := make([]Event, q.Len())
	copy(out, q.items[q.head:])
	return out
}

package core

// Key is a backend-neutral key identifier. Backends translate their native
// key codes through the configured bindings before queuing events.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction bound to a directional key.
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyUp:
		return Up, true
	case KeyDown:
		return Down, true
	case KeyLeft:
		return Left, true
	case KeyRight:
		return Right, true
	}
	return Direction{}, false
}

// EventKind distinguishes input events.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventQuit
)

// Event is a single input event taken from a backend's queue.
type Event struct {
	Kind EventKind
	Key  Key // Set for EventKeyDown
}

// KeyPress builds a key-down event.
func KeyPress(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// Quit builds a quit event.
func Quit() Event {
	return Event{Kind: EventQuit}
}

// EventQueue buffers events between ticks. Backends push as input arrives
// and the driver drains the whole queue once per tick.
type EventQueue struct {
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns all queued events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

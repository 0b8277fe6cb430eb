package interner

// Observer receives pool lifecycle events. Implementations must be safe
// for concurrent use; events are delivered outside the pool's lock, from
// whichever goroutine triggered them.
type Observer interface {
	On(eventData EventData)
}

// Event represents a pool event type.
type Event int

const (
	// EventHit is emitted when Get finds the value already resident.
	EventHit Event = iota
	// EventMiss is emitted when Get inserts a new value.
	EventMiss
	// EventRelease is emitted when the last handle to a value is released
	// and the value is removed from the pool.
	EventRelease
	// EventReacquire is emitted when a release is abandoned because another
	// goroutine obtained a fresh handle while the release was in flight.
	EventReacquire
)

// String implements fmt.Stringer.
func (e Event) String() string {
	switch e {
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventRelease:
		return "release"
	case EventReacquire:
		return "reacquire"
	default:
		return "unknown"
	}
}

// EventData carries the details of a pool event.
type EventData struct {
	Event Event
	// Index is the slot index of the value the event refers to.
	Index int
}

func emit(o Observer, event Event, index int) {
	if o == nil {
		return
	}
	o.On(EventData{
		Event: event,
		Index: index,
	})
}

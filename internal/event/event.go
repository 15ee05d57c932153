package event

// Event is implemented by every event value that can move through a
// System. Values are immutable once constructed; the built-in variants
// live in the events subpackage, but applications may enqueue their own
// types as long as they satisfy this interface.
type Event interface {
	// Type returns the variant's fixed type tag.
	Type() Type

	// Category returns the variant's family bitmask.
	Category() Category

	// Describe returns a stable, human-readable description of the
	// event including its payload fields.
	Describe() string
}

// Listener receives every dispatched event. Listeners must treat the
// event as read-only.
type Listener func(Event)

// Dispatch invokes fn if ev's concrete type is T, narrowing the event
// for the handler. It reports whether the handler ran. A non-matching
// event is not an error; the intended pattern is several Dispatch calls
// in sequence inside one listener, demultiplexing onto typed handlers:
//
//	event.Dispatch(ev, func(kp events.KeyPress) { ... })
//	event.Dispatch(ev, func(mc events.MouseButtonClick) { ... })
func Dispatch[T Event](ev Event, fn func(T)) bool {
	v, ok := ev.(T)
	if !ok {
		return false
	}
	fn(v)
	return true
}

package event

import "fmt"

// entry pairs an event with the type tag it carried at enqueue time, so
// dispatch never has to re-derive type information from the value.
type entry struct {
	ev  Event
	typ Type
}

// System owns the event queue and listener registry. It is an explicit
// value rather than process-global state so that independent instances
// can coexist (one per window, one per test).
//
// A System is not safe for concurrent use; see the package
// documentation.
type System struct {
	queue     []entry
	listeners []Listener

	// Configuration
	config systemConfig

	// Stats
	eventsEnqueued     uint64
	eventsDispatched   uint64
	listenersInvoked   uint64
	listenerRegistered uint64
}

// NewSystem creates a new event system with the given options.
func NewSystem(opts ...SystemOption) *System {
	config := defaultSystemConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &System{
		queue:     make([]entry, 0, config.queueCapacity),
		listeners: make([]Listener, 0, config.listenerCapacity),
		config:    config,
	}
}

// Enqueue appends a copy of ev, tagged with its type, to the tail of
// the queue. The event is not delivered until the next DispatchAll.
func (s *System) Enqueue(ev Event) {
	s.queue = append(s.queue, entry{ev: ev, typ: ev.Type()})
	s.eventsEnqueued++
}

// AddListener appends l to the listener registry. Listeners are invoked
// for every subsequently dispatched event, in registration order, until
// the System is discarded. There is no removal.
func (s *System) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
	s.listenerRegistered++
}

// DispatchAll delivers every event present in the queue at call-start,
// in FIFO order, to every registered listener in registration order,
// then returns. An empty queue is a no-op.
//
// The listener list is snapshotted when the call begins: listeners
// added by a listener mid-pass take effect on the next DispatchAll.
// Likewise, events enqueued by a listener mid-pass stay queued for the
// next pass rather than extending the current one.
func (s *System) DispatchAll() {
	n := len(s.queue)
	if n == 0 {
		return
	}

	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)

	for i := 0; i < n; i++ {
		ent := s.queue[i]

		// A queued tag that is missing or disagrees with the value is a
		// programmer defect (an event wired up wrong); fail fast rather
		// than deliver a lie.
		if ent.typ == TypeNone || ent.typ != ent.ev.Type() {
			panic(fmt.Sprintf("event: queued entry tagged %s but value reports %s", ent.typ, ent.ev.Type()))
		}

		for _, l := range listeners {
			l(ent.ev)
			s.listenersInvoked++
		}
		s.eventsDispatched++
	}

	// Keep anything enqueued during the pass; release the rest.
	remaining := len(s.queue) - n
	copy(s.queue, s.queue[n:])
	for i := remaining; i < len(s.queue); i++ {
		s.queue[i] = entry{}
	}
	s.queue = s.queue[:remaining]
}

// Pending returns the number of events waiting in the queue.
func (s *System) Pending() int {
	return len(s.queue)
}

// Listeners returns the number of registered listeners.
func (s *System) Listeners() int {
	return len(s.listeners)
}

// Stats contains cumulative counters for a System.
type Stats struct {
	// EventsEnqueued is the total number of events enqueued.
	EventsEnqueued uint64

	// EventsDispatched is the total number of events delivered.
	EventsDispatched uint64

	// ListenersInvoked is the total number of listener invocations.
	ListenersInvoked uint64

	// ListenersRegistered is the total number of listeners added.
	ListenersRegistered uint64

	// Pending is the current queue depth.
	Pending int
}

// Stats returns current system statistics.
func (s *System) Stats() Stats {
	return Stats{
		EventsEnqueued:      s.eventsEnqueued,
		EventsDispatched:    s.eventsDispatched,
		ListenersInvoked:    s.listenersInvoked,
		ListenersRegistered: s.listenerRegistered,
		Pending:             len(s.queue),
	}
}

// Package event provides the Helios event system: a single-threaded,
// in-process event queue with ordered listener delivery.
//
// Producers construct event values (see the events subpackage) and hand
// them to a System. The host application drains the queue once per
// logical frame:
//
//	sys := event.NewSystem()
//
//	sys.AddListener(func(ev event.Event) {
//	    fmt.Print(ev.Describe())
//
//	    event.Dispatch(ev, func(kp events.KeyPress) {
//	        fmt.Printf("%c\n", kp.Key())
//	    })
//	})
//
//	sys.Enqueue(events.NewKeyPress('a', events.Modifiers{}))
//	sys.Enqueue(events.NewMouseButtonClick(2, events.Modifiers{}))
//
//	// inside the main loop
//	sys.DispatchAll()
//
// # Delivery Model
//
// Enqueue appends to a FIFO queue; nothing is delivered until
// DispatchAll runs. DispatchAll delivers every event present at
// call-start, in enqueue order, to every listener in registration
// order, then returns. Listeners added during a dispatch pass take
// effect on the next pass, and events enqueued by a listener during a
// pass are delivered on the next pass. This makes re-entrant use from
// inside a listener safe and predictable.
//
// # Custom Events
//
// Any type implementing the Event interface can be enqueued alongside
// the built-in variants, so applications may define their own events
// without touching this package.
//
// # Concurrency
//
// A System is not safe for concurrent use. All calls must come from a
// single goroutine, typically the host's main loop. Multi-threaded
// producers must route mutation through that goroutine themselves.
package event

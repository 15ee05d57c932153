package event

import (
	"fmt"
	"strings"
	"testing"
)

// testEvent is a minimal custom event used to exercise the system
// without depending on the built-in variants.
type testEvent struct {
	id int
}

func (e testEvent) Type() Type         { return TypeKeyPress }
func (e testEvent) Category() Category { return CategoryKeyboard }
func (e testEvent) Describe() string   { return fmt.Sprintf("[Event:Test]: ID: (%d)\n", e.id) }

// badEvent reports a different tag at dispatch time than it did at
// enqueue time, simulating a mis-wired variant.
type badEvent struct {
	typ Type
}

func (e badEvent) Type() Type         { return e.typ }
func (e badEvent) Category() Category { return CategoryNone }
func (e badEvent) Describe() string   { return "[Event:Bad]\n" }

func TestNewSystem(t *testing.T) {
	s := NewSystem()

	if s == nil {
		t.Fatal("expected non-nil system")
	}
	if s.Pending() != 0 {
		t.Errorf("expected empty queue, got %d", s.Pending())
	}
	if s.Listeners() != 0 {
		t.Errorf("expected no listeners, got %d", s.Listeners())
	}
}

func TestSystem_Enqueue(t *testing.T) {
	s := NewSystem()

	s.Enqueue(testEvent{id: 1})
	s.Enqueue(testEvent{id: 2})

	if s.Pending() != 2 {
		t.Errorf("expected 2 pending, got %d", s.Pending())
	}
}

func TestSystem_DispatchAll_OrderAndFanout(t *testing.T) {
	s := NewSystem()

	const n = 5
	for i := 0; i < n; i++ {
		s.Enqueue(testEvent{id: i})
	}

	var got []string
	s.AddListener(func(ev Event) {
		got = append(got, "L1:"+fmt.Sprint(ev.(testEvent).id))
	})
	s.AddListener(func(ev Event) {
		got = append(got, "L2:"+fmt.Sprint(ev.(testEvent).id))
	})

	s.DispatchAll()

	want := []string{
		"L1:0", "L2:0",
		"L1:1", "L2:1",
		"L1:2", "L2:2",
		"L1:3", "L2:3",
		"L1:4", "L2:4",
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("delivery order mismatch:\n got  %v\n want %v", got, want)
	}
	if s.Pending() != 0 {
		t.Errorf("expected empty queue after dispatch, got %d", s.Pending())
	}
}

func TestSystem_DispatchAll_EmptyQueue(t *testing.T) {
	s := NewSystem()

	invoked := 0
	s.AddListener(func(Event) { invoked++ })

	s.DispatchAll()

	if invoked != 0 {
		t.Errorf("expected no invocations on empty queue, got %d", invoked)
	}
}

func TestSystem_DispatchAll_SingleEntry(t *testing.T) {
	// Regression guard for the drain bound: exactly one entry must mean
	// exactly one delivery and an empty queue, never an over-read.
	s := NewSystem()

	invoked := 0
	s.AddListener(func(Event) { invoked++ })

	s.Enqueue(testEvent{id: 7})
	s.DispatchAll()

	if invoked != 1 {
		t.Errorf("expected 1 invocation, got %d", invoked)
	}
	if s.Pending() != 0 {
		t.Errorf("expected empty queue, got %d", s.Pending())
	}

	// A second pass over the now-empty queue is a no-op.
	s.DispatchAll()
	if invoked != 1 {
		t.Errorf("expected no further invocations, got %d", invoked)
	}
}

func TestSystem_DispatchAll_ExactlyOncePerEvent(t *testing.T) {
	s := NewSystem()

	const n = 100
	counts := make(map[int]int)
	s.AddListener(func(ev Event) {
		counts[ev.(testEvent).id]++
	})

	for i := 0; i < n; i++ {
		s.Enqueue(testEvent{id: i})
	}
	s.DispatchAll()

	for i := 0; i < n; i++ {
		if counts[i] != 1 {
			t.Errorf("event %d delivered %d times, want 1", i, counts[i])
		}
	}
}

func TestSystem_ListenerAddedDuringDispatch(t *testing.T) {
	s := NewSystem()

	lateInvoked := 0
	s.AddListener(func(Event) {
		if s.Listeners() == 1 {
			s.AddListener(func(Event) { lateInvoked++ })
		}
	})

	s.Enqueue(testEvent{id: 1})
	s.DispatchAll()

	// The listener registered mid-pass must not see the current pass.
	if lateInvoked != 0 {
		t.Errorf("late listener invoked %d times during its own pass, want 0", lateInvoked)
	}

	s.Enqueue(testEvent{id: 2})
	s.DispatchAll()

	if lateInvoked != 1 {
		t.Errorf("late listener invoked %d times on next pass, want 1", lateInvoked)
	}
}

func TestSystem_EnqueueDuringDispatch(t *testing.T) {
	s := NewSystem()

	var seen []int
	s.AddListener(func(ev Event) {
		id := ev.(testEvent).id
		seen = append(seen, id)
		if id == 1 {
			s.Enqueue(testEvent{id: 99})
		}
	})

	s.Enqueue(testEvent{id: 1})
	s.DispatchAll()

	// The mid-pass enqueue stays queued for the next pass.
	if len(seen) != 1 || seen[0] != 1 {
		t.Fatalf("first pass delivered %v, want [1]", seen)
	}
	if s.Pending() != 1 {
		t.Fatalf("expected 1 pending after first pass, got %d", s.Pending())
	}

	s.DispatchAll()
	if len(seen) != 2 || seen[1] != 99 {
		t.Errorf("second pass delivered %v, want [1 99]", seen)
	}
	if s.Pending() != 0 {
		t.Errorf("expected empty queue, got %d", s.Pending())
	}
}

func TestSystem_DispatchAll_CorruptTagPanics(t *testing.T) {
	s := NewSystem()
	s.AddListener(func(Event) {})

	// Mutate the tag after enqueue so the stored tag and the value's
	// own tag disagree at dispatch time.
	s.Enqueue(badEvent{typ: TypeKeyPress})
	s.queue[0].typ = TypeMouseMove

	defer func() {
		if recover() == nil {
			t.Error("expected panic on corrupt queue entry")
		}
	}()
	s.DispatchAll()
}

func TestSystem_DispatchAll_NoneTagPanics(t *testing.T) {
	s := NewSystem()

	s.Enqueue(badEvent{typ: TypeNone})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on TypeNone entry")
		}
	}()
	s.DispatchAll()
}

func TestSystem_Stats(t *testing.T) {
	s := NewSystem()

	s.AddListener(func(Event) {})
	s.AddListener(func(Event) {})

	s.Enqueue(testEvent{id: 1})
	s.Enqueue(testEvent{id: 2})
	s.Enqueue(testEvent{id: 3})
	s.DispatchAll()

	stats := s.Stats()
	if stats.EventsEnqueued != 3 {
		t.Errorf("EventsEnqueued = %d, want 3", stats.EventsEnqueued)
	}
	if stats.EventsDispatched != 3 {
		t.Errorf("EventsDispatched = %d, want 3", stats.EventsDispatched)
	}
	if stats.ListenersInvoked != 6 {
		t.Errorf("ListenersInvoked = %d, want 6", stats.ListenersInvoked)
	}
	if stats.ListenersRegistered != 2 {
		t.Errorf("ListenersRegistered = %d, want 2", stats.ListenersRegistered)
	}
	if stats.Pending != 0 {
		t.Errorf("Pending = %d, want 0", stats.Pending)
	}
}

func TestSystem_CapacityOptions(t *testing.T) {
	s := NewSystem(WithQueueCapacity(128), WithListenerCapacity(8))

	// Capacity hints have no observable behavioral effect.
	if s.Pending() != 0 || s.Listeners() != 0 {
		t.Errorf("capacity options changed observable state: pending=%d listeners=%d",
			s.Pending(), s.Listeners())
	}
	if cap(s.queue) != 128 {
		t.Errorf("queue capacity = %d, want 128", cap(s.queue))
	}
	if cap(s.listeners) != 8 {
		t.Errorf("listener capacity = %d, want 8", cap(s.listeners))
	}
}

func TestSystem_IndependentInstances(t *testing.T) {
	s1 := NewSystem()
	s2 := NewSystem()

	got1, got2 := 0, 0
	s1.AddListener(func(Event) { got1++ })
	s2.AddListener(func(Event) { got2++ })

	s1.Enqueue(testEvent{id: 1})
	s1.DispatchAll()
	s2.DispatchAll()

	if got1 != 1 {
		t.Errorf("s1 listener invoked %d times, want 1", got1)
	}
	if got2 != 0 {
		t.Errorf("s2 listener invoked %d times, want 0", got2)
	}
}

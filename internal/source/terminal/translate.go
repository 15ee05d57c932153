package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/helios/internal/event"
	"github.com/dshills/helios/internal/event/events"
)

// translator converts tcell events into Helios events. It is stateful:
// press/release detection needs the previous button mask and duplicate
// moves are dropped against the previous position.
type translator struct {
	lastButtons tcell.ButtonMask
	lastX       int
	lastY       int
	moved       bool
}

func newTranslator() *translator {
	return &translator{lastX: -1, lastY: -1}
}

// buttonBits maps tcell button mask bits to Helios button ids.
var buttonBits = []struct {
	mask tcell.ButtonMask
	id   int
}{
	{tcell.Button1, 1},
	{tcell.Button2, 2},
	{tcell.Button3, 3},
	{tcell.Button4, 4},
	{tcell.Button5, 5},
	{tcell.Button6, 6},
	{tcell.Button7, 7},
	{tcell.Button8, 8},
}

// translate converts one tcell event into zero or more Helios events,
// in the order they should be enqueued. Unrecognized tcell events
// translate to nothing.
func (t *translator) translate(ev tcell.Event) []event.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return t.translateKey(e)
	case *tcell.EventMouse:
		return t.translateMouse(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return []event.Event{events.NewWindowResize(w, h)}
	default:
		return nil
	}
}

func (t *translator) translateKey(e *tcell.EventKey) []event.Event {
	mods := translateMods(e.Modifiers())

	if e.Key() == tcell.KeyRune {
		r := e.Rune()
		return []event.Event{
			events.NewKeyPress(int(r), mods),
			events.NewKeyType(r),
		}
	}

	return []event.Event{events.NewKeyPress(int(e.Key()), mods)}
}

func (t *translator) translateMouse(e *tcell.EventMouse) []event.Event {
	var out []event.Event

	mods := translateMods(e.Modifiers())
	x, y := e.Position()

	if !t.moved || x != t.lastX || y != t.lastY {
		out = append(out, events.NewMouseMove(x, y))
		t.lastX, t.lastY = x, y
		t.moved = true
	}

	buttons := e.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		out = append(out, events.NewMouseScroll(1))
	case buttons&tcell.WheelDown != 0:
		out = append(out, events.NewMouseScroll(-1))
	}

	pressed := buttons &^ t.lastButtons
	released := t.lastButtons &^ buttons
	for _, b := range buttonBits {
		if pressed&b.mask != 0 {
			out = append(out, events.NewMouseButtonClick(b.id, mods))
		}
		if released&b.mask != 0 {
			out = append(out, events.NewMouseButtonRelease(b.id, mods))
		}
	}
	t.lastButtons = buttons &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)

	return out
}

// translateMods converts a tcell modifier mask to Helios modifiers.
// Meta has no Helios equivalent and is dropped.
func translateMods(m tcell.ModMask) events.Modifiers {
	return events.Modifiers{
		Control: m&tcell.ModCtrl != 0,
		Shift:   m&tcell.ModShift != 0,
		Alt:     m&tcell.ModAlt != 0,
	}
}

package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/helios/internal/event"
	"github.com/dshills/helios/internal/event/events"
)

// eventToTable converts an event into the Lua table handed to script
// handlers. Unknown (custom) event types carry only the common fields.
func eventToTable(L *lua.LState, ev event.Event) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "type", lua.LString(ev.Type().String()))
	L.SetField(t, "category", lua.LString(ev.Category().String()))
	L.SetField(t, "describe", lua.LString(ev.Describe()))

	switch e := ev.(type) {
	case events.WindowCreate:
		L.SetField(t, "show_mode", lua.LNumber(e.ShowMode()))

	case events.WindowDestroy:
		// no payload

	case events.WindowMove:
		L.SetField(t, "x", lua.LNumber(e.X()))
		L.SetField(t, "y", lua.LNumber(e.Y()))

	case events.WindowResize:
		L.SetField(t, "width", lua.LNumber(e.Width()))
		L.SetField(t, "height", lua.LNumber(e.Height()))

	case events.MouseMove:
		L.SetField(t, "x", lua.LNumber(e.X()))
		L.SetField(t, "y", lua.LNumber(e.Y()))

	case events.MouseScroll:
		L.SetField(t, "offset", lua.LNumber(e.Offset()))

	case events.MouseButtonClick:
		L.SetField(t, "button", lua.LNumber(e.Button()))
		setModifiers(L, t, e.IsControl(), e.IsShift(), e.IsAlt())

	case events.MouseButtonRelease:
		L.SetField(t, "button", lua.LNumber(e.Button()))
		setModifiers(L, t, e.IsControl(), e.IsShift(), e.IsAlt())

	case events.KeyPress:
		L.SetField(t, "key", lua.LNumber(e.Key()))
		setModifiers(L, t, e.IsControl(), e.IsShift(), e.IsAlt())

	case events.KeyRelease:
		L.SetField(t, "key", lua.LNumber(e.Key()))
		setModifiers(L, t, e.IsControl(), e.IsShift(), e.IsAlt())

	case events.KeyType:
		L.SetField(t, "char", lua.LString(string(e.Char())))
	}

	return t
}

func setModifiers(L *lua.LState, t *lua.LTable, control, shift, alt bool) {
	L.SetField(t, "control", lua.LBool(control))
	L.SetField(t, "shift", lua.LBool(shift))
	L.SetField(t, "alt", lua.LBool(alt))
}

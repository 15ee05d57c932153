// Package lua hosts Lua scripts as Helios event listeners.
//
// A Host owns one Lua state. Scripts loaded into it register handlers
// through the helios module:
//
//	helios.on_event(function(ev)
//	    if ev.type == "KeyPress" then
//	        print(ev.describe)
//	    end
//	end)
//
// Host.Listener returns a single event.Listener that converts each
// event into a Lua table and calls every registered handler in
// registration order. The table carries the event's type and category
// names, its description, and the variant's payload fields in
// snake_case (key, control, shift, alt, x, y, button, offset, width,
// height, char, show_mode).
//
// gopher-lua's LState is not goroutine-safe; a Host must be used from
// the same single goroutine that drives the event system.
package lua

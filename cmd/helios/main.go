// Package main is the entry point for the Helios event system demo.
//
// It wires a terminal input source into an event system, registers a
// handful of listeners (an on-screen event trace, the Lua plugin host,
// and a quit handler), and drains the queue once per frame.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/helios/internal/config"
	"github.com/dshills/helios/internal/event"
	"github.com/dshills/helios/internal/event/events"
	luahost "github.com/dshills/helios/internal/plugin/lua"
	"github.com/dshills/helios/internal/source/terminal"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "helios.toml", "path to configuration file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("helios %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}

	sys := event.NewSystem(
		event.WithQueueCapacity(cfg.Events.QueueCapacity),
		event.WithListenerCapacity(cfg.Events.ListenerCapacity),
	)

	trace := newTrace(32)

	host := luahost.NewHost(luahost.WithErrorHandler(func(e *luahost.ScriptError) {
		trace.add("lua error: " + e.Error())
	}))
	defer host.Close()

	for _, script := range cfg.Plugins.Scripts {
		if _, err := host.LoadFile(script); err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading plugin: %v\n", err)
			return 1
		}
	}

	src, err := terminal.NewSource(sys, terminal.WithMouse(cfg.Terminal.Mouse))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating terminal source: %v\n", err)
		return 1
	}
	if err := src.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing terminal: %v\n", err)
		return 1
	}
	defer src.Shutdown()

	quit := false
	sys.AddListener(func(ev event.Event) {
		trace.add(strings.TrimSuffix(ev.Describe(), "\n"))
	})
	sys.AddListener(host.Listener())
	sys.AddListener(func(ev event.Event) {
		event.Dispatch(ev, func(kp events.KeyPress) {
			if kp.Key() == 'q' || kp.Key() == int(tcell.KeyCtrlC) {
				quit = true
			}
		})
	})

	// The watcher callback runs on the watcher's goroutine; the trace is
	// only ever touched on this one, so the callback just signals and the
	// frame loop does the mutation.
	configChanged := make(chan struct{}, 1)
	watcher, err := config.NewWatcher(*configPath, func() {
		notify(configChanged)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config watch disabled: %v\n", err)
	} else {
		defer watcher.Close()
	}

	for !quit {
		src.Poll()
		sys.DispatchAll()
		if drain(configChanged) {
			// Capacity hints only apply at construction; just surface
			// the change so the user knows a restart would pick it up.
			trace.add("config file changed (restart to apply)")
		}
		drawTrace(src.Screen(), trace, sys.Stats())
	}

	return 0
}

// notify signals ch without blocking; a pending signal coalesces.
func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// drain reports whether a signal was pending on ch.
func drain(ch chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

// trace keeps the most recent event descriptions for display. It is
// not goroutine-safe; only the frame loop touches it.
type trace struct {
	lines []string
	max   int
}

func newTrace(max int) *trace {
	return &trace{max: max}
}

func (t *trace) add(line string) {
	t.lines = append(t.lines, line)
	if len(t.lines) > t.max {
		t.lines = t.lines[len(t.lines)-t.max:]
	}
}

// drawTrace renders the event trace and counters, newest at the bottom.
func drawTrace(screen tcell.Screen, t *trace, stats event.Stats) {
	screen.Clear()
	_, height := screen.Size()

	header := fmt.Sprintf("helios (q to quit) | enqueued %d dispatched %d pending %d",
		stats.EventsEnqueued, stats.EventsDispatched, stats.Pending)
	drawString(screen, 0, 0, tcell.StyleDefault.Bold(true), header)

	start := 0
	visible := height - 2
	if visible > 0 && len(t.lines) > visible {
		start = len(t.lines) - visible
	}
	for i, line := range t.lines[start:] {
		drawString(screen, 0, 2+i, tcell.StyleDefault, line)
	}

	screen.Show()
}

func drawString(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	col := x
	for _, r := range s {
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}

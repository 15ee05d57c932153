package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/helios/internal/event"
	"github.com/dshills/helios/internal/event/events"
)

// Source owns a tcell screen and enqueues translated input into an
// event system. Like the System it feeds, a Source must be driven from
// a single goroutine.
type Source struct {
	screen tcell.Screen
	sys    *event.System
	tr     *translator
	config sourceConfig
	inited bool
}

// SourceOption configures a Source.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	// mouseEnabled controls whether mouse reporting is turned on.
	mouseEnabled bool

	// pollTimeout bounds a single Poll call.
	pollTimeout time.Duration
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		mouseEnabled: true,
		pollTimeout:  50 * time.Millisecond,
	}
}

// WithMouse enables or disables mouse reporting.
func WithMouse(enabled bool) SourceOption {
	return func(c *sourceConfig) {
		c.mouseEnabled = enabled
	}
}

// WithPollTimeout bounds how long a single Poll call may block waiting
// for input.
func WithPollTimeout(d time.Duration) SourceOption {
	return func(c *sourceConfig) {
		if d > 0 {
			c.pollTimeout = d
		}
	}
}

// NewSource creates a Source backed by a real terminal screen.
func NewSource(sys *event.System, opts ...SourceOption) (*Source, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewSourceWithScreen(sys, screen, opts...), nil
}

// NewSourceWithScreen creates a Source on an existing screen. Tests use
// this with tcell's simulation screen.
func NewSourceWithScreen(sys *event.System, screen tcell.Screen, opts ...SourceOption) *Source {
	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &Source{
		screen: screen,
		sys:    sys,
		tr:     newTranslator(),
		config: config,
	}
}

// Init initializes the screen and enqueues a WindowCreate event.
func (s *Source) Init() error {
	if err := s.screen.Init(); err != nil {
		return err
	}

	if s.config.mouseEnabled {
		s.screen.EnableMouse()
	}

	s.inited = true
	s.sys.Enqueue(events.NewWindowCreate(0))
	return nil
}

// Shutdown enqueues a WindowDestroy event and finalizes the screen.
// The destroy event is only observable if the caller runs one more
// dispatch pass afterwards.
func (s *Source) Shutdown() {
	if !s.inited {
		return
	}
	s.inited = false

	s.sys.Enqueue(events.NewWindowDestroy())
	s.screen.Fini()
}

// Poll waits (bounded by the poll timeout) for pending terminal input
// and enqueues each translated event. It returns the number of events
// enqueued; zero means the timeout elapsed with nothing to read.
func (s *Source) Poll() int {
	if !s.screen.HasPendingEvent() {
		// The caller polls once per frame; a short sleep stands in for a
		// blocking wait so the frame loop keeps control of the thread.
		time.Sleep(s.config.pollTimeout)
		if !s.screen.HasPendingEvent() {
			return 0
		}
	}

	enqueued := 0
	for s.screen.HasPendingEvent() {
		ev := s.screen.PollEvent()
		if ev == nil {
			break
		}
		for _, out := range s.tr.translate(ev) {
			s.sys.Enqueue(out)
			enqueued++
		}
	}
	return enqueued
}

// Screen exposes the underlying screen for drawing.
func (s *Source) Screen() tcell.Screen {
	return s.screen
}

// Size returns the screen dimensions.
func (s *Source) Size() (int, int) {
	return s.screen.Size()
}

package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the host configuration.
type Config struct {
	Events   EventsConfig   `toml:"events"`
	Terminal TerminalConfig `toml:"terminal"`
	Plugins  PluginsConfig  `toml:"plugins"`
}

// EventsConfig holds capacity hints for the event system.
type EventsConfig struct {
	// QueueCapacity is the initial event queue capacity.
	QueueCapacity int `toml:"queue_capacity"`

	// ListenerCapacity is the initial listener registry capacity.
	ListenerCapacity int `toml:"listener_capacity"`
}

// TerminalConfig configures the terminal input source.
type TerminalConfig struct {
	// Mouse enables mouse reporting.
	Mouse bool `toml:"mouse"`
}

// PluginsConfig configures the Lua plugin host.
type PluginsConfig struct {
	// Scripts lists Lua script paths to load as listeners.
	Scripts []string `toml:"scripts"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Events: EventsConfig{
			QueueCapacity:    64,
			ListenerCapacity: 16,
		},
		Terminal: TerminalConfig{
			Mouse: true,
		},
	}
}

// ParseError describes a malformed configuration file.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string

	// Err is the underlying TOML error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config: parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads configuration from path. A missing file yields the
// defaults without error; a malformed file yields a *ParseError.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Err: err}
	}

	if cfg.Events.QueueCapacity <= 0 {
		cfg.Events.QueueCapacity = Default().Events.QueueCapacity
	}
	if cfg.Events.ListenerCapacity <= 0 {
		cfg.Events.ListenerCapacity = Default().Events.ListenerCapacity
	}

	return cfg, nil
}

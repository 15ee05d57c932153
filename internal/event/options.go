package event

// SystemOption configures an event System.
type SystemOption func(*systemConfig)

// systemConfig contains configuration for the event system.
type systemConfig struct {
	// queueCapacity is the initial capacity of the event queue.
	queueCapacity int

	// listenerCapacity is the initial capacity of the listener
	// registry.
	listenerCapacity int
}

// defaultSystemConfig returns sensible default configuration.
func defaultSystemConfig() systemConfig {
	return systemConfig{
		queueCapacity:    64,
		listenerCapacity: 16,
	}
}

// WithQueueCapacity sets the initial event queue capacity. This is a
// performance hint only; the queue grows past it as needed.
func WithQueueCapacity(n int) SystemOption {
	return func(c *systemConfig) {
		if n > 0 {
			c.queueCapacity = n
		}
	}
}

// WithListenerCapacity sets the initial listener registry capacity.
// This is a performance hint only.
func WithListenerCapacity(n int) SystemOption {
	return func(c *systemConfig) {
		if n > 0 {
			c.listenerCapacity = n
		}
	}
}

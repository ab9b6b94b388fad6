package inventory

// Option defines a functional option for configuring a Manager.
type Option func(*Manager) error

// WithLogger sets the logger for the Manager.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: rejected borrow and return requests
// Info level: inventory changes, successful loans and returns, calculated fees
// Warn level: negative quantities added to the inventory
// Error level: rejected fee calculations.
func WithLogger(logger Logger) Option {
	return func(m *Manager) error {
		if logger == nil {
			return ErrNilLogger
		}

		m.logger = logger

		return nil
	}
}

// WithMetrics sets the metrics collector for the Manager.
// The collector will receive counters for borrow/return outcomes, sent notifications and
// fee calculations, the duration of notification delivery, and values for the available copies
// per book and calculated fees.
func WithMetrics(collector MetricsCollector) Option {
	return func(m *Manager) error {
		if collector == nil {
			return ErrNilMetricsCollector
		}

		m.metricsCollector = collector

		return nil
	}
}

package filters

import "github.com/prometheus/client_golang/prometheus"

// FilterFactory constructs instances of one filter implementation.
// Factories are registered in a Registry under their name and must be
// safe for concurrent CreateFilter calls.
type FilterFactory interface {
	// Name returns the unique reverse-DNS-style key the factory is
	// registered under, e.g. "relay.filters.compress.v1alpha1.Compress".
	Name() string

	// CreateFilter builds a filter instance from the supplied arguments.
	CreateFilter(args CreateFilterArgs) (Filter, error)
}

// CreateFilterArgs carries everything a factory needs to instantiate a
// filter.
type CreateFilterArgs struct {
	// Config is the filter's opaque configuration. It is nil when the
	// chain entry carries no config block; factories that require one
	// fail with ErrMissingConfig.
	Config ConfigSource

	// MetricsRegistry receives the filter's collectors. nil falls back
	// to prometheus.DefaultRegisterer.
	MetricsRegistry prometheus.Registerer
}

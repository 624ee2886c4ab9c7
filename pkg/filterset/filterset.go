// Package filterset assembles the built-in filters into a registry and
// builds filter chains from configuration.
//
// It sits above the individual filter packages so that callers wiring a
// proxy only need one import to get every supported filter.
package filterset

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"helios-gg/relay/pkg/filters"
	"helios-gg/relay/pkg/filters/compress"
	"helios-gg/relay/pkg/filters/concatenatebytes"
	"helios-gg/relay/pkg/filters/loadbalancer"
)

// Default returns a registry with every built-in filter registered:
//
//   - relay.filters.compress.v1alpha1.Compress
//   - relay.filters.concatenate_bytes.v1alpha1.ConcatenateBytes
//   - relay.filters.load_balancer.v1alpha1.LoadBalancer
//
// The log is handed to filters that emit packet-path warnings; nil
// falls back to slog.Default().
func Default(log *slog.Logger) *filters.Registry {
	registry := filters.NewRegistry()
	registry.Register(compress.NewFactory(log))
	registry.Register(concatenatebytes.NewFactory())
	registry.Register(loadbalancer.NewFactory())
	return registry
}

// CreateChain instantiates each configured filter through the registry,
// in order, and composes them into a chain. Construction stops at the
// first failure; the returned error names the filter that could not be
// built.
func CreateChain(registry *filters.Registry, configs []filters.FilterConfig, metrics prometheus.Registerer) (*filters.Chain, error) {
	built := make([]filters.Filter, 0, len(configs))
	for _, config := range configs {
		filter, err := registry.CreateFilter(config.Name, filters.CreateFilterArgs{
			Config:          config.Source(),
			MetricsRegistry: metrics,
		})
		if err != nil {
			return nil, err
		}

		slog.Debug("filter created", "name", config.Name)
		built = append(built, filter)
	}

	slog.Debug("filter chain ready", "filters", len(built))
	return filters.NewChain(built...), nil
}

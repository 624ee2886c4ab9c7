// Package metrics provides the Prometheus plumbing shared by every
// filter: the proxy-wide namespace, naming helpers for per-filter
// collectors, and registration helpers that tolerate re-registration.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace is the Prometheus namespace all proxy metrics live under.
const Namespace = "relay"

// FilterSubsystem returns the Prometheus subsystem for the named
// filter. Combined with Namespace, a counter "packets_dropped_total"
// owned by the Compress filter renders as
// relay_filter_Compress_packets_dropped_total.
func FilterSubsystem(filterName string) string {
	return "filter_" + filterName
}

// FilterCounterOpts builds CounterOpts for a counter owned by a filter.
//
// Parameters:
//   - filterName: short filter name (e.g. "Compress")
//   - name: metric name (e.g. "packets_dropped_total")
//   - help: metric description
func FilterCounterOpts(filterName, name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: FilterSubsystem(filterName),
		Name:      name,
		Help:      help,
	}
}

// RegisterCounterVec registers vec with the registerer. If an identical
// collector is already registered, the existing one is returned so that
// constructing the same filter twice against one registry shares
// counters instead of failing. A nil registerer falls back to
// prometheus.DefaultRegisterer.
func RegisterCounterVec(r prometheus.Registerer, vec *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if r == nil {
		r = prometheus.DefaultRegisterer
	}
	if err := r.Register(vec); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return vec, nil
}

// RegisterCounter registers a plain counter with the same
// already-registered tolerance as RegisterCounterVec.
func RegisterCounter(r prometheus.Registerer, counter prometheus.Counter) (prometheus.Counter, error) {
	if r == nil {
		r = prometheus.DefaultRegisterer
	}
	if err := r.Register(counter); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return counter, nil
}

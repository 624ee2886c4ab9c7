package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestFilterCounterOpts tests that per-filter counters render under the
// relay_filter_<FilterName>_<metric> naming convention.
func TestFilterCounterOpts(t *testing.T) {
	opts := FilterCounterOpts("Compress", "packets_dropped_total", "Total dropped packets")

	if opts.Namespace != "relay" {
		t.Errorf("Expected namespace relay, got %q", opts.Namespace)
	}
	if opts.Subsystem != "filter_Compress" {
		t.Errorf("Expected subsystem filter_Compress, got %q", opts.Subsystem)
	}

	counter := prometheus.NewCounter(opts)
	counter.Inc()

	count := testutil.CollectAndCount(counter, "relay_filter_Compress_packets_dropped_total")
	if count != 1 {
		t.Errorf("Expected 1 metric under the full name, got %d", count)
	}
}

// TestRegisterCounterVec tests that re-registering an identical vector
// hands back the existing collector.
func TestRegisterCounterVec(t *testing.T) {
	registry := prometheus.NewRegistry()
	opts := FilterCounterOpts("Compress", "packets_dropped_total", "Total dropped packets")

	first, err := RegisterCounterVec(registry, prometheus.NewCounterVec(opts, []string{"action"}))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	first.WithLabelValues("Compress").Inc()

	second, err := RegisterCounterVec(registry, prometheus.NewCounterVec(opts, []string{"action"}))
	if err != nil {
		t.Fatalf("Expected no error on re-registration, got %v", err)
	}

	count := testutil.ToFloat64(second.WithLabelValues("Compress"))
	if count != 1 {
		t.Errorf("Expected re-registration to share the existing counter, got %f", count)
	}
}

// TestRegisterCounter tests the plain counter registration path.
func TestRegisterCounter(t *testing.T) {
	registry := prometheus.NewRegistry()
	opts := FilterCounterOpts("Compress", "compressed_bytes_total", "Total compressed bytes")

	first, err := RegisterCounter(registry, prometheus.NewCounter(opts))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	first.Add(42)

	second, err := RegisterCounter(registry, prometheus.NewCounter(opts))
	if err != nil {
		t.Fatalf("Expected no error on re-registration, got %v", err)
	}

	if got := testutil.ToFloat64(second); got != 42 {
		t.Errorf("Expected shared counter value 42, got %f", got)
	}
}

// TestRegisterCounterVec_Conflict tests that a genuinely conflicting
// registration still fails.
func TestRegisterCounterVec_Conflict(t *testing.T) {
	registry := prometheus.NewRegistry()
	opts := FilterCounterOpts("Compress", "packets_dropped_total", "Total dropped packets")

	if _, err := RegisterCounterVec(registry, prometheus.NewCounterVec(opts, []string{"action"})); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Same name, different label set.
	_, err := RegisterCounterVec(registry, prometheus.NewCounterVec(opts, []string{"direction"}))
	if err == nil {
		t.Error("Expected an error for a conflicting label set")
	}
}

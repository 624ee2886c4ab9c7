package compress

import (
	"github.com/prometheus/client_golang/prometheus"

	"helios-gg/relay/pkg/telemetry/metrics"
)

// filterMetrics holds the Prometheus collectors owned by the filter.
type filterMetrics struct {
	packetsDroppedCompress   prometheus.Counter
	packetsDroppedDecompress prometheus.Counter
	compressedBytes          prometheus.Counter
	decompressedBytes        prometheus.Counter
}

func newMetrics(registry prometheus.Registerer) (*filterMetrics, error) {
	dropped, err := metrics.RegisterCounterVec(registry, prometheus.NewCounterVec(
		metrics.FilterCounterOpts(filterName, "packets_dropped_total",
			"Total number of packets dropped as they could not be processed"),
		[]string{"action"},
	))
	if err != nil {
		return nil, err
	}

	compressed, err := metrics.RegisterCounter(registry, prometheus.NewCounter(
		metrics.FilterCounterOpts(filterName, "compressed_bytes_total",
			"Total number of compressed bytes either received or sent")))
	if err != nil {
		return nil, err
	}

	decompressed, err := metrics.RegisterCounter(registry, prometheus.NewCounter(
		metrics.FilterCounterOpts(filterName, "decompressed_bytes_total",
			"Total number of decompressed bytes either received or sent")))
	if err != nil {
		return nil, err
	}

	return &filterMetrics{
		packetsDroppedCompress:   dropped.WithLabelValues("Compress"),
		packetsDroppedDecompress: dropped.WithLabelValues("Decompress"),
		compressedBytes:          compressed,
		decompressedBytes:        decompressed,
	}, nil
}

// Package compress provides a filter that compresses and decompresses
// packet data travelling between players and game servers.
//
// The filter rewrites the entire packet, so its position in the chain
// matters: it usually sits first or last so that it covers the complete
// payload the other filters produced.
//
// A typical deployment runs the filter on both sides of a link. The
// proxy near the player compresses on read and decompresses on write;
// the proxy in front of the game server mirrors it with the opposite
// actions.
package compress

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"helios-gg/relay/pkg/filters"
	"helios-gg/relay/pkg/telemetry/logging"
)

// Name is the registry key of the Compress filter.
const Name = "relay.filters.compress.v1alpha1.Compress"

// filterName is the short name used in metric and log identifiers.
const filterName = "Compress"

// Compress applies the configured per-direction actions to every packet
// that passes through it. A packet the codec cannot process is dropped
// and counted; processing never fails the chain.
type Compress struct {
	log        *slog.Logger
	metrics    *filterMetrics
	mode       Mode
	onRead     Action
	onWrite    Action
	compressor Compressor

	// Samplers gate the warn log for each failure direction.
	droppedCompress   *logging.Sampler
	droppedDecompress *logging.Sampler
}

// New returns a Compress filter for the given configuration. A nil
// config applies the documented defaults; a nil log falls back to
// slog.Default().
func New(cfg *Config, log *slog.Logger, registry prometheus.Registerer) (*Compress, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if log == nil {
		log = slog.Default()
	}
	m, err := newMetrics(registry)
	if err != nil {
		return nil, err
	}
	return &Compress{
		log:               log.With("filter", filterName),
		metrics:           m,
		mode:              cfg.Mode,
		onRead:            cfg.OnRead,
		onWrite:           cfg.OnWrite,
		compressor:        cfg.Mode.compressor(),
		droppedCompress:   logging.NewSampler(logging.SampleRate),
		droppedDecompress: logging.NewSampler(logging.SampleRate),
	}, nil
}

// Read implements filters.Filter.
func (f *Compress) Read(ctx *filters.ReadContext) *filters.ReadResponse {
	contents, ok := f.apply(f.onRead, ctx.Contents)
	if !ok {
		return nil
	}
	ctx.Contents = contents
	return ctx.Response()
}

// Write implements filters.Filter.
func (f *Compress) Write(ctx *filters.WriteContext) *filters.WriteResponse {
	contents, ok := f.apply(f.onWrite, ctx.Contents)
	if !ok {
		return nil
	}
	ctx.Contents = contents
	return ctx.Response()
}

// apply runs one direction's action over the packet contents. It
// returns the new contents, or ok=false when the packet must be
// dropped.
func (f *Compress) apply(action Action, contents []byte) ([]byte, bool) {
	originalSize := len(contents)

	switch action {
	case ActionCompress:
		encoded, err := f.compressor.Encode(contents)
		if err != nil {
			f.failedCompression(err)
			return nil, false
		}
		f.metrics.decompressedBytes.Add(float64(originalSize))
		f.metrics.compressedBytes.Add(float64(len(encoded)))
		return encoded, true

	case ActionDecompress:
		decoded, err := f.compressor.Decode(contents)
		if err != nil {
			f.failedDecompression(err)
			return nil, false
		}
		f.metrics.compressedBytes.Add(float64(originalSize))
		f.metrics.decompressedBytes.Add(float64(len(decoded)))
		return decoded, true

	default:
		return contents, true
	}
}

// failedCompression records a packet dropped because it could not be
// compressed, logging one warning per logging.SampleRate failures.
func (f *Compress) failedCompression(err error) {
	f.metrics.packetsDroppedCompress.Inc()
	if count, shouldLog := f.droppedCompress.Record(); shouldLog {
		f.log.Warn("Packets are being dropped as they could not be compressed",
			"mode", f.mode.String(), "error", err, "count", count)
	}
}

// failedDecompression records a packet dropped because it could not be
// decompressed, logging one warning per logging.SampleRate failures.
func (f *Compress) failedDecompression(err error) {
	f.metrics.packetsDroppedDecompress.Inc()
	if count, shouldLog := f.droppedDecompress.Record(); shouldLog {
		f.log.Warn("Packets are being dropped as they could not be decompressed",
			"mode", f.mode.String(), "error", err, "count", count)
	}
}

// NewFactory returns a factory producing Compress filters. A nil log
// falls back to slog.Default().
func NewFactory(log *slog.Logger) filters.FilterFactory {
	return &factory{log: log}
}

type factory struct {
	log *slog.Logger
}

// Name implements filters.FilterFactory.
func (f *factory) Name() string {
	return Name
}

// CreateFilter implements filters.FilterFactory.
func (f *factory) CreateFilter(args filters.CreateFilterArgs) (filters.Filter, error) {
	if args.Config == nil {
		return nil, filters.ErrMissingConfig
	}
	cfg, err := NewConfig(args.Config)
	if err != nil {
		return nil, err
	}
	return New(cfg, f.log, args.MetricsRegistry)
}

// Package concatenatebytes provides a filter that attaches a fixed
// byte payload to packets, typically to tag traffic for a routing
// filter further along the chain.
package concatenatebytes

import (
	"slices"

	"helios-gg/relay/pkg/filters"
)

// Name is the registry key of the ConcatenateBytes filter.
const Name = "relay.filters.concatenate_bytes.v1alpha1.ConcatenateBytes"

// ConcatenateBytes appends or prepends a configured payload to every
// packet that passes through it. It never drops packets.
type ConcatenateBytes struct {
	onRead  Strategy
	onWrite Strategy
	bytes   []byte
}

// New returns a ConcatenateBytes filter for the given configuration.
// A nil config applies the documented defaults.
func New(cfg *Config) *ConcatenateBytes {
	if cfg == nil {
		cfg = &Config{}
	}
	return &ConcatenateBytes{
		onRead:  cfg.OnRead,
		onWrite: cfg.OnWrite,
		bytes:   slices.Clone(cfg.Bytes),
	}
}

// Read implements filters.Filter.
func (f *ConcatenateBytes) Read(ctx *filters.ReadContext) *filters.ReadResponse {
	ctx.Contents = f.apply(f.onRead, ctx.Contents)
	return ctx.Response()
}

// Write implements filters.Filter.
func (f *ConcatenateBytes) Write(ctx *filters.WriteContext) *filters.WriteResponse {
	ctx.Contents = f.apply(f.onWrite, ctx.Contents)
	return ctx.Response()
}

// apply returns the packet contents with the payload attached per the
// strategy. The result is always a fresh slice so the input buffer is
// never written to.
func (f *ConcatenateBytes) apply(strategy Strategy, contents []byte) []byte {
	switch strategy {
	case StrategyAppend:
		return slices.Concat(contents, f.bytes)
	case StrategyPrepend:
		return slices.Concat(f.bytes, contents)
	default:
		return contents
	}
}

// NewFactory returns a factory producing ConcatenateBytes filters.
func NewFactory() filters.FilterFactory {
	return &factory{}
}

type factory struct{}

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
	return New(cfg), nil
}

// Package loadbalancer provides a filter that pins each packet heading
// upstream to a single endpoint chosen from the packet's current view.
package loadbalancer

import (
	"math/rand/v2"
	"sync/atomic"

	"helios-gg/relay/pkg/cluster"
	"helios-gg/relay/pkg/filters"
)

// Name is the registry key of the LoadBalancer filter.
const Name = "relay.filters.load_balancer.v1alpha1.LoadBalancer"

// EndpointChooser narrows a packet's endpoint view to the one endpoint
// the packet should be routed to. Implementations must be safe for
// concurrent use across packets.
type EndpointChooser interface {
	Choose(endpoints *cluster.UpstreamEndpoints)
}

// roundRobinChooser cycles through the endpoints in view using a shared
// atomic counter.
type roundRobinChooser struct {
	counter atomic.Uint64
}

func (c *roundRobinChooser) Choose(endpoints *cluster.UpstreamEndpoints) {
	count := c.counter.Add(1) - 1
	index := int(count % uint64(endpoints.Size()))
	// Size is never zero, so the index is always within bounds.
	_ = endpoints.Keep(index)
}

// randomChooser picks an endpoint in view uniformly at random.
type randomChooser struct{}

func (c randomChooser) Choose(endpoints *cluster.UpstreamEndpoints) {
	index := rand.IntN(endpoints.Size())
	_ = endpoints.Keep(index)
}

// chooser returns a fresh chooser implementing the policy.
func (p Policy) chooser() EndpointChooser {
	switch p {
	case PolicyRandom:
		return randomChooser{}
	default:
		return &roundRobinChooser{}
	}
}

// LoadBalancer distributes packets across the endpoints in view. Reply
// traffic passes through untouched.
type LoadBalancer struct {
	chooser EndpointChooser
}

// New returns a LoadBalancer filter for the given configuration. A nil
// config applies the documented default policy.
func New(cfg *Config) *LoadBalancer {
	if cfg == nil {
		cfg = &Config{}
	}
	return &LoadBalancer{chooser: cfg.Policy.chooser()}
}

// Read implements filters.Filter.
func (f *LoadBalancer) Read(ctx *filters.ReadContext) *filters.ReadResponse {
	f.chooser.Choose(&ctx.Endpoints)
	return ctx.Response()
}

// Write implements filters.Filter.
func (f *LoadBalancer) Write(ctx *filters.WriteContext) *filters.WriteResponse {
	return ctx.Response()
}

// NewFactory returns a factory producing LoadBalancer filters.
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

package filters

import (
	"net/netip"

	"helios-gg/relay/pkg/cluster"
)

// Filter processes packets on their way through the proxy.
//
// A single instance serves every session in the process, so
// implementations must be safe for concurrent packets.
type Filter interface {
	// Read processes a packet received from a downstream player before
	// it is forwarded upstream. Returning nil drops the packet.
	Read(ctx *ReadContext) *ReadResponse

	// Write processes a packet received from an upstream endpoint
	// before it is returned downstream. Returning nil drops the packet.
	Write(ctx *WriteContext) *WriteResponse
}

// ReadContext describes a packet travelling from a downstream player
// toward the upstream endpoints.
type ReadContext struct {
	// Endpoints is the view of upstream endpoints this packet may be
	// forwarded to. Filters narrow it to steer the packet.
	Endpoints cluster.UpstreamEndpoints

	// Source is the downstream address the packet arrived from.
	Source netip.AddrPort

	// Contents is the packet payload.
	Contents []byte

	// Metadata carries values between filters in the same traversal.
	Metadata map[string]any
}

// NewReadContext returns a ReadContext for one received packet.
func NewReadContext(endpoints cluster.UpstreamEndpoints, source netip.AddrPort, contents []byte) *ReadContext {
	return &ReadContext{
		Endpoints: endpoints,
		Source:    source,
		Contents:  contents,
		Metadata:  make(map[string]any),
	}
}

// Response converts the context into the response that forwards the
// packet as it now stands.
func (c *ReadContext) Response() *ReadResponse {
	return &ReadResponse{
		Endpoints: c.Endpoints,
		Contents:  c.Contents,
		Metadata:  c.Metadata,
	}
}

// ReadResponse is the forward decision of a read hook: the possibly
// narrowed endpoints view and the possibly rewritten contents.
type ReadResponse struct {
	Endpoints cluster.UpstreamEndpoints
	Contents  []byte
	Metadata  map[string]any
}

// WriteContext describes a packet travelling from an upstream endpoint
// back to a downstream player.
type WriteContext struct {
	// Endpoint is the upstream endpoint the packet originated from.
	Endpoint *cluster.Endpoint

	// Source is the upstream address the packet arrived from.
	Source netip.AddrPort

	// Destination is the downstream address the packet is headed to.
	Destination netip.AddrPort

	// Contents is the packet payload.
	Contents []byte

	// Metadata carries values between filters in the same traversal.
	Metadata map[string]any
}

// NewWriteContext returns a WriteContext for one returning packet.
func NewWriteContext(endpoint *cluster.Endpoint, source, destination netip.AddrPort, contents []byte) *WriteContext {
	return &WriteContext{
		Endpoint:    endpoint,
		Source:      source,
		Destination: destination,
		Contents:    contents,
		Metadata:    make(map[string]any),
	}
}

// Response converts the context into the response that forwards the
// packet as it now stands.
func (c *WriteContext) Response() *WriteResponse {
	return &WriteResponse{
		Contents: c.Contents,
		Metadata: c.Metadata,
	}
}

// WriteResponse is the forward decision of a write hook.
type WriteResponse struct {
	Contents []byte
	Metadata map[string]any
}

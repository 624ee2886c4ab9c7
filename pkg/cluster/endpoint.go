package cluster

import "net/netip"

// Endpoint is a single upstream game server that proxied traffic can be
// forwarded to.
type Endpoint struct {
	// Address is the UDP socket address of the server.
	Address netip.AddrPort

	// Metadata holds opaque per-endpoint data supplied by the control
	// plane. The proxy core never interprets it; filters may.
	Metadata map[string]any
}

// NewEndpoint returns an Endpoint for the given address with no metadata.
func NewEndpoint(address netip.AddrPort) Endpoint {
	return Endpoint{Address: address}
}

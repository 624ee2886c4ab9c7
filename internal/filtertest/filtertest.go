// Package filtertest provides fixtures shared by filter tests.
package filtertest

import (
	"fmt"
	"net/netip"
	"testing"

	"helios-gg/relay/pkg/cluster"
	"helios-gg/relay/pkg/filters"
)

// Downstream and upstream addresses used by the context fixtures.
var (
	DownstreamAddr = netip.MustParseAddrPort("10.0.0.1:7000")
	UpstreamAddr   = netip.MustParseAddrPort("127.0.0.1:8080")
)

// Endpoints returns a set of count endpoints on 127.0.0.1 with
// sequential ports starting at 8080.
func Endpoints(tb testing.TB, count int) cluster.Endpoints {
	tb.Helper()
	list := make([]cluster.Endpoint, 0, count)
	for i := 0; i < count; i++ {
		address := netip.MustParseAddrPort(fmt.Sprintf("127.0.0.1:%d", 8080+i))
		list = append(list, cluster.NewEndpoint(address))
	}
	endpoints, err := cluster.NewEndpoints(list)
	if err != nil {
		tb.Fatalf("building test endpoints: %v", err)
	}
	return endpoints
}

// ReadContext returns a read context over a single-endpoint view.
func ReadContext(tb testing.TB, contents []byte) *filters.ReadContext {
	tb.Helper()
	endpoints := Endpoints(tb, 1)
	return filters.NewReadContext(endpoints.Upstream(), DownstreamAddr, contents)
}

// WriteContext returns a write context originating from the fixture's
// upstream endpoint.
func WriteContext(tb testing.TB, contents []byte) *filters.WriteContext {
	tb.Helper()
	endpoint := cluster.NewEndpoint(UpstreamAddr)
	return filters.NewWriteContext(&endpoint, UpstreamAddr, DownstreamAddr, contents)
}

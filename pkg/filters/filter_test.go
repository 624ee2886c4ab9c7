package filters

import (
	"bytes"
	"testing"

	"helios-gg/relay/pkg/cluster"
)

// TestNewReadContext tests context initialization.
func TestNewReadContext(t *testing.T) {
	endpoints := testEndpoints(t)
	ctx := NewReadContext(endpoints.Upstream(), downstreamAddr, []byte("hello"))

	if ctx.Source != downstreamAddr {
		t.Errorf("Expected source %v, got %v", downstreamAddr, ctx.Source)
	}
	if ctx.Metadata == nil {
		t.Error("Expected metadata map to be initialized")
	}
	if ctx.Endpoints.Size() != 1 {
		t.Errorf("Expected endpoints view of size 1, got %d", ctx.Endpoints.Size())
	}
}

// TestReadContext_Response tests that the conversion carries the current
// packet state.
func TestReadContext_Response(t *testing.T) {
	endpoints := testEndpoints(t)
	ctx := NewReadContext(endpoints.Upstream(), downstreamAddr, []byte("hello"))
	ctx.Metadata["token"] = "abc"
	ctx.Contents = append(ctx.Contents, '!')

	response := ctx.Response()
	if !bytes.Equal(response.Contents, []byte("hello!")) {
		t.Errorf("Expected contents %q, got %q", "hello!", response.Contents)
	}
	if response.Metadata["token"] != "abc" {
		t.Errorf("Expected metadata to carry over, got %v", response.Metadata)
	}
	if response.Endpoints.Size() != 1 {
		t.Errorf("Expected endpoints view of size 1, got %d", response.Endpoints.Size())
	}
}

// TestNewWriteContext tests context initialization for returning traffic.
func TestNewWriteContext(t *testing.T) {
	endpoint := cluster.NewEndpoint(upstreamAddr)
	ctx := NewWriteContext(&endpoint, upstreamAddr, downstreamAddr, []byte("reply"))

	if ctx.Endpoint == nil || ctx.Endpoint.Address != upstreamAddr {
		t.Errorf("Expected originating endpoint %v, got %v", upstreamAddr, ctx.Endpoint)
	}
	if ctx.Source != upstreamAddr || ctx.Destination != downstreamAddr {
		t.Errorf("Expected source %v and destination %v, got %v and %v",
			upstreamAddr, downstreamAddr, ctx.Source, ctx.Destination)
	}
	if ctx.Metadata == nil {
		t.Error("Expected metadata map to be initialized")
	}

	response := ctx.Response()
	if !bytes.Equal(response.Contents, []byte("reply")) {
		t.Errorf("Expected contents %q, got %q", "reply", response.Contents)
	}
}

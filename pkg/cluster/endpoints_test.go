package cluster

import (
	"errors"
	"fmt"
	"net/netip"
	"slices"
	"testing"
)

// testEndpoint returns an endpoint at 127.0.0.<id>:8080.
func testEndpoint(id int) Endpoint {
	return NewEndpoint(netip.MustParseAddrPort(fmt.Sprintf("127.0.0.%d:8080", id)))
}

// viewAddresses collects the addresses currently in view, in order.
func viewAddresses(u *UpstreamEndpoints) []netip.AddrPort {
	var addrs []netip.AddrPort
	for endpoint := range u.Iter() {
		addrs = append(addrs, endpoint.Address)
	}
	return addrs
}

// TestNewEndpoints tests set construction and the non-empty invariant.
func TestNewEndpoints(t *testing.T) {
	t.Run("empty list rejected", func(t *testing.T) {
		_, err := NewEndpoints(nil)
		if !errors.Is(err, ErrNoEndpoints) {
			t.Errorf("Expected ErrNoEndpoints, got %v", err)
		}
	})

	t.Run("non-empty list accepted", func(t *testing.T) {
		endpoints, err := NewEndpoints([]Endpoint{testEndpoint(1)})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if endpoints.Len() != 1 {
			t.Errorf("Expected 1 endpoint, got %d", endpoints.Len())
		}
	})

	t.Run("input slice is copied", func(t *testing.T) {
		input := []Endpoint{testEndpoint(1), testEndpoint(2)}
		endpoints, err := NewEndpoints(input)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		input[0] = testEndpoint(9)

		view := endpoints.Upstream()
		addrs := viewAddresses(&view)
		if addrs[0] != testEndpoint(1).Address {
			t.Errorf("Expected backing list to be unaffected by caller mutation, got %v", addrs[0])
		}
	})
}

// TestUpstreamEndpoints_Keep tests narrowing the view to a single endpoint.
func TestUpstreamEndpoints_Keep(t *testing.T) {
	initial := []Endpoint{testEndpoint(1), testEndpoint(2), testEndpoint(3)}

	t.Run("last index is valid", func(t *testing.T) {
		endpoints, _ := NewEndpoints(initial)
		view := endpoints.Upstream()
		if err := view.Keep(len(initial) - 1); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("out of range index fails", func(t *testing.T) {
		endpoints, _ := NewEndpoints(initial)
		view := endpoints.Upstream()

		err := view.Keep(len(initial))
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("Expected ErrIndexOutOfRange, got %v", err)
		}

		var oorErr *IndexOutOfRangeError
		if !errors.As(err, &oorErr) {
			t.Fatalf("Expected *IndexOutOfRangeError, got %T", err)
		}
		if oorErr.Index != 3 || oorErr.Size != 3 {
			t.Errorf("Expected index=3 size=3, got index=%d size=%d", oorErr.Index, oorErr.Size)
		}

		if view.Size() != len(initial) {
			t.Errorf("Expected view unchanged after failed keep, got size %d", view.Size())
		}
	})

	t.Run("keep resolves against the current view", func(t *testing.T) {
		endpoints, _ := NewEndpoints(initial)
		view := endpoints.Upstream()

		// Narrow to the second endpoint, then keep position zero of the
		// narrowed view. The result must still be the second endpoint.
		if err := view.Keep(1); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if err := view.Keep(0); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		want := []netip.AddrPort{testEndpoint(2).Address}
		if got := viewAddresses(&view); !slices.Equal(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("keep on a singleton view fails for index one", func(t *testing.T) {
		endpoints, _ := NewEndpoints(initial)
		view := endpoints.Upstream()

		if err := view.Keep(1); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if err := view.Keep(1); err == nil {
			t.Error("Expected out of range error on the singleton view")
		}
	})
}

// TestUpstreamEndpoints_Retain tests predicate-based narrowing.
func TestUpstreamEndpoints_Retain(t *testing.T) {
	initial := []Endpoint{testEndpoint(1), testEndpoint(2), testEndpoint(3), testEndpoint(4)}

	endpoints, err := NewEndpoints(initial)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	view := endpoints.Upstream()

	result := view.Retain(func(ep *Endpoint) bool {
		return ep.Address != testEndpoint(2).Address
	})
	if !result.IsSome() || result.Count != 3 {
		t.Fatalf("Expected RetainedSome with count 3, got kind=%v count=%d", result.Kind, result.Count)
	}
	if view.Size() != 3 {
		t.Errorf("Expected view size 3, got %d", view.Size())
	}

	result = view.Retain(func(ep *Endpoint) bool {
		return ep.Address != testEndpoint(3).Address
	})
	if !result.IsSome() || result.Count != 2 {
		t.Fatalf("Expected RetainedSome with count 2, got kind=%v count=%d", result.Kind, result.Count)
	}
	want := []netip.AddrPort{testEndpoint(1).Address, testEndpoint(4).Address}
	if got := viewAddresses(&view); !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// A pass that matches nothing reports RetainedNone and must leave
	// the view exactly as it was.
	result = view.Retain(func(*Endpoint) bool { return false })
	if !result.IsNone() {
		t.Fatalf("Expected RetainedNone, got kind=%v count=%d", result.Kind, result.Count)
	}
	if got := viewAddresses(&view); !slices.Equal(got, want) {
		t.Errorf("Expected view unchanged after no-match retain, got %v", got)
	}

	t.Run("no match on a full view", func(t *testing.T) {
		endpoints, _ := NewEndpoints(initial)
		view := endpoints.Upstream()

		result := view.Retain(func(*Endpoint) bool { return false })
		if !result.IsNone() {
			t.Fatalf("Expected RetainedNone, got kind=%v count=%d", result.Kind, result.Count)
		}
		if view.Size() != len(initial) {
			t.Errorf("Expected view unchanged, got size %d", view.Size())
		}
	})

	t.Run("full match reports all and is idempotent", func(t *testing.T) {
		endpoints, _ := NewEndpoints(initial)
		view := endpoints.Upstream()

		for pass := 0; pass < 2; pass++ {
			result := view.Retain(func(*Endpoint) bool { return true })
			if !result.IsAll() || result.Count != len(initial) {
				t.Fatalf("Expected RetainedAll with count %d on pass %d, got kind=%v count=%d",
					len(initial), pass, result.Kind, result.Count)
			}
			if view.Size() != len(initial) {
				t.Errorf("Expected view size %d on pass %d, got %d", len(initial), pass, view.Size())
			}
		}
	})
}

// TestUpstreamEndpoints_Size tests view sizing before and after narrowing.
func TestUpstreamEndpoints_Size(t *testing.T) {
	endpoints, _ := NewEndpoints([]Endpoint{testEndpoint(1), testEndpoint(2), testEndpoint(3)})
	view := endpoints.Upstream()

	if view.Size() != 3 {
		t.Errorf("Expected size 3, got %d", view.Size())
	}

	if err := view.Keep(1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if view.Size() != 1 {
		t.Errorf("Expected size 1 after keep, got %d", view.Size())
	}
}

// TestUpstreamEndpoints_Iter tests iteration order over full and narrowed views.
func TestUpstreamEndpoints_Iter(t *testing.T) {
	initial := []Endpoint{testEndpoint(1), testEndpoint(2), testEndpoint(3)}
	endpoints, _ := NewEndpoints(initial)

	t.Run("full view preserves order", func(t *testing.T) {
		view := endpoints.Upstream()
		want := []netip.AddrPort{
			testEndpoint(1).Address,
			testEndpoint(2).Address,
			testEndpoint(3).Address,
		}
		if got := viewAddresses(&view); !slices.Equal(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("narrowed view yields the subset", func(t *testing.T) {
		view := endpoints.Upstream()
		if err := view.Keep(1); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		want := []netip.AddrPort{testEndpoint(2).Address}
		if got := viewAddresses(&view); !slices.Equal(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("stops when the caller breaks", func(t *testing.T) {
		view := endpoints.Upstream()
		var seen int
		for range view.Iter() {
			seen++
			break
		}
		if seen != 1 {
			t.Errorf("Expected iteration to stop after one endpoint, got %d", seen)
		}
	})
}

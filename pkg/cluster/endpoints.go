package cluster

import (
	"iter"
	"slices"
)

// Endpoints is the set of all known upstream endpoints. The set is
// immutable once constructed; copies are cheap and share the same
// backing list.
type Endpoints struct {
	list []Endpoint
}

// NewEndpoints returns an Endpoints backed by a copy of the provided
// list. An empty list is rejected with ErrNoEndpoints.
func NewEndpoints(endpoints []Endpoint) (Endpoints, error) {
	if len(endpoints) == 0 {
		return Endpoints{}, ErrNoEndpoints
	}
	return Endpoints{list: slices.Clone(endpoints)}, nil
}

// Len returns the number of endpoints in the set.
func (e Endpoints) Len() int {
	return len(e.list)
}

// Upstream returns a fresh per-packet view spanning the whole set.
func (e Endpoints) Upstream() UpstreamEndpoints {
	return UpstreamEndpoints{endpoints: e}
}

// UpstreamEndpoints is a mutable per-packet view over an Endpoints set.
// The backing set never changes after initialization; the view narrows
// by tracking a subset of indices into it. The view is guaranteed to be
// non-empty: any operation that would empty it reports failure and
// leaves the view unchanged.
type UpstreamEndpoints struct {
	endpoints Endpoints

	// subset holds indices into the backing list that form the current
	// view. nil means the full set is in view.
	subset []int
}

// Size returns the number of endpoints currently in view.
func (u *UpstreamEndpoints) Size() int {
	if u.subset != nil {
		return len(u.subset)
	}
	return len(u.endpoints.list)
}

// Keep narrows the view to the single endpoint at the given position.
// The index is relative to the current view, not the backing set. An
// out-of-range index leaves the view unchanged.
func (u *UpstreamEndpoints) Keep(index int) error {
	if index < 0 || index >= u.Size() {
		return &IndexOutOfRangeError{Index: index, Size: u.Size()}
	}
	if u.subset != nil {
		absolute := u.subset[index]
		u.subset = u.subset[:1]
		u.subset[0] = absolute
		return nil
	}
	u.subset = []int{index}
	return nil
}

// Retain narrows the view to the endpoints the predicate accepts and
// reports how many survived. When nothing matches, the view is left
// unchanged so the caller can drop the packet instead.
func (u *UpstreamEndpoints) Retain(predicate func(*Endpoint) bool) RetainedItems {
	total := u.Size()

	var kept []int
	if u.subset != nil {
		for _, index := range u.subset {
			if predicate(&u.endpoints.list[index]) {
				kept = append(kept, index)
			}
		}
	} else {
		for index := range u.endpoints.list {
			if predicate(&u.endpoints.list[index]) {
				kept = append(kept, index)
			}
		}
	}

	if len(kept) == 0 {
		return RetainedItems{Kind: RetainedNone}
	}
	u.subset = kept
	if len(kept) == total {
		return RetainedItems{Kind: RetainedAll, Count: total}
	}
	return RetainedItems{Kind: RetainedSome, Count: len(kept)}
}

// Iter yields the endpoints currently in view, preserving backing-set
// order, without materializing a copy.
func (u *UpstreamEndpoints) Iter() iter.Seq[Endpoint] {
	return func(yield func(Endpoint) bool) {
		if u.subset != nil {
			for _, index := range u.subset {
				if !yield(u.endpoints.list[index]) {
					return
				}
			}
			return
		}
		for _, endpoint := range u.endpoints.list {
			if !yield(endpoint) {
				return
			}
		}
	}
}

// RetainedKind classifies the outcome of a Retain pass.
type RetainedKind int

const (
	// RetainedNone means the predicate rejected every endpoint in view.
	RetainedNone RetainedKind = iota

	// RetainedSome means a strict subset of the view survived.
	RetainedSome

	// RetainedAll means every endpoint in view survived.
	RetainedAll
)

// RetainedItems is the outcome of an UpstreamEndpoints.Retain call,
// detailing how many (if any) of the endpoints were retained by the
// predicate.
type RetainedItems struct {
	// Kind classifies the outcome.
	Kind RetainedKind

	// Count is the number of endpoints left in view. It is zero for
	// RetainedNone and equals the prior view size for RetainedAll.
	Count int
}

// IsNone reports whether the pass rejected every endpoint.
func (r RetainedItems) IsNone() bool {
	return r.Kind == RetainedNone
}

// IsSome reports whether a strict subset survived.
func (r RetainedItems) IsSome() bool {
	return r.Kind == RetainedSome
}

// IsAll reports whether every endpoint in view survived.
func (r RetainedItems) IsAll() bool {
	return r.Kind == RetainedAll
}

// Package logging provides the structured-logging helpers shared by the
// packet path.
//
// Filters log through plain log/slog loggers. The one addition the hot
// path needs is occurrence sampling: a per-packet failure can fire
// thousands of times per second, so packet-path warnings are emitted
// once every SampleRate occurrences with the running count attached.
package logging

import "sync/atomic"

// SampleRate is the fixed divisor for packet-path failure logs: one in
// every SampleRate occurrences is logged.
const SampleRate = 1000

// Sampler decides which occurrences of a high-frequency event get
// logged. It is safe for concurrent use; a decision costs one atomic
// add.
type Sampler struct {
	every uint64
	count atomic.Uint64
}

// NewSampler returns a Sampler that selects every nth occurrence. An n
// of zero selects every occurrence.
func NewSampler(n uint64) *Sampler {
	if n == 0 {
		n = 1
	}
	return &Sampler{every: n}
}

// Record marks one occurrence and reports the running count along with
// whether this occurrence should be logged. The decision is
// count % n == 0 taken after the increment, so the first selected
// occurrence is the nth. Concurrent callers may shift which occurrence
// is selected, never the one-in-n rate.
func (s *Sampler) Record() (count uint64, shouldLog bool) {
	count = s.count.Add(1)
	return count, count%s.every == 0
}

// Count returns the number of occurrences recorded so far.
func (s *Sampler) Count() uint64 {
	return s.count.Load()
}

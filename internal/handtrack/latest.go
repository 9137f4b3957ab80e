package handtrack

import (
	"sync/atomic"

	"hand-showreel/internal/gesture"
)

// Latest is a single-slot mailbox holding the newest sample from a tracker
// running at its own cadence. One goroutine stores, the frame loop loads;
// readers never block and simply see the last value written.
type Latest struct {
	sample atomic.Pointer[gesture.HandSample]
	seq    atomic.Int64
}

// Store publishes a sample.
func (l *Latest) Store(s gesture.HandSample) {
	l.sample.Store(&s)
	l.seq.Add(1)
}

// Load returns the newest sample, or an absent hand if none was stored yet.
func (l *Latest) Load() gesture.HandSample {
	if p := l.sample.Load(); p != nil {
		return *p
	}
	return gesture.HandSample{}
}

// Seq counts stores so far. A frame loop can compare it between ticks to
// tell a fresh sample from a repeated one.
func (l *Latest) Seq() int64 {
	return l.seq.Load()
}

// At ignores t and returns the newest sample, so a Latest can stand in for a
// recorded Source in a live loop.
func (l *Latest) At(float64) gesture.HandSample {
	return l.Load()
}

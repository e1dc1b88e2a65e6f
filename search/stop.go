package search

import (
	"sync/atomic"
	"time"
)

// loadStop reads a cooperative stop flag set by another goroutine (the UCI
// front-end's `stop` handler, or the browser façade's message-passing glue).
func loadStop(stop *int32) bool { return atomic.LoadInt32(stop) != 0 }

// RaiseStop sets a stop flag so the next node-boundary poll aborts the
// current iteration.
func RaiseStop(stop *int32) { atomic.StoreInt32(stop, 1) }

// ResetStop clears a stop flag for a new search.
func ResetStop(stop *int32) { atomic.StoreInt32(stop, 0) }

// deadlineCheck wraps an absolute time limit; the zero value never expires,
// which lets fixed-depth searches share the same code path as timed ones.
type deadlineCheck struct {
	at    time.Time
	armed bool
}

func newDeadline(d time.Duration) deadlineCheck {
	if d <= 0 {
		return deadlineCheck{}
	}
	return deadlineCheck{at: time.Now().Add(d), armed: true}
}

func (d deadlineCheck) expired() bool {
	return d.armed && time.Now().After(d.at)
}

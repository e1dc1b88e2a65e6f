package search

import "time"

// Limits carries every form the UCI `go` command's time control can take.
// Only the fields the caller set are meaningful; Allocate interprets zero as
// "not specified".
type Limits struct {
	Depth      int
	MoveTime   time.Duration
	WTime      time.Duration
	BTime      time.Duration
	WInc       time.Duration
	BInc       time.Duration
	MovesToGo  int
	Infinite   bool
	NodesLimit uint64
}

const (
	overhead    = 30 * time.Millisecond
	incFraction = 0.75
)

// Allocate turns a time control into a hard deadline duration for the side
// to move, following the formula in the time-management design: base the
// budget on movestogo when given, otherwise assume 30 moves remain; add a
// fraction of the increment; clamp so the engine never risks flagging.
func Allocate(remaining, inc time.Duration, movesToGo int) time.Duration {
	if remaining <= 0 {
		return 0
	}
	divisor := 30
	if movesToGo > 0 {
		divisor = movesToGo
	}
	budget := remaining / time.Duration(divisor)
	budget += time.Duration(float64(inc) * incFraction)

	if cap := remaining - overhead; budget > cap {
		budget = cap
	}
	if budget < 0 {
		budget = 0
	}
	return budget
}

// Deadline resolves a full Limits value (for the side to move) into the
// duration the iterative-deepening loop should run for, or zero meaning
// "depth/infinite governs, not the clock".
func Deadline(l Limits, sideToMove int) time.Duration {
	if l.MoveTime > 0 {
		return l.MoveTime
	}
	if l.Infinite {
		return 0
	}
	var remaining, inc time.Duration
	if sideToMove == 0 {
		remaining, inc = l.WTime, l.WInc
	} else {
		remaining, inc = l.BTime, l.BInc
	}
	if remaining <= 0 {
		return 0
	}
	return Allocate(remaining, inc, l.MovesToGo)
}

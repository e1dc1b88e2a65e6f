package search

import (
	"time"

	"github.com/rs/zerolog/log"

	"corvidchess/board"
	"corvidchess/tt"
)

// Result is the root-level outcome of one iterative-deepening run: the move
// to play, its score, and enough bookkeeping for the protocol front-end to
// report an `info` line per the iteration that produced it.
type Result struct {
	BestMove  board.Move
	Score     int
	Mate      bool
	MateIn    int
	Depth     int
	Nodes     uint64
	ElapsedMs int64
	PV        []board.Move
}

// Run drives iterative deepening from depth 1 to limits.Depth (or until the
// deadline computed from limits expires), returning the best move found by
// the last fully completed iteration. onIteration, if non-nil, is called
// after every completed depth so the protocol front-end can stream `info`
// lines without Run knowing anything about UCI formatting.
func Run(b *board.Board, table *tt.Table, gameKeys []uint64, limits Limits, stop *int32, onIteration func(Result)) Result {
	table.NewSearch()
	s := NewSearcher(table, gameKeys, stop)

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > MaxPly-1 {
		maxDepth = MaxPly - 1
	}
	s.deadline = newDeadline(Deadline(limits, int(b.SideToMove())))

	start := time.Now()
	var last Result

	for depth := 1; depth <= maxDepth; depth++ {
		score, aborted := s.aspirationSearch(b, depth, last.Score)
		if aborted && depth > 1 {
			break
		}

		pv := reconstructPV(b, table, depth)
		if len(pv) == 0 {
			break
		}

		result := Result{
			BestMove:  pv[0],
			Score:     score,
			Depth:     depth,
			Nodes:     s.nodeCount(),
			ElapsedMs: time.Since(start).Milliseconds(),
			PV:        pv,
		}
		if IsMateScore(score) {
			result.Mate = true
			result.MateIn = MateIn(score)
		}
		last = result

		log.Debug().Int("depth", depth).Int("score", score).Uint64("nodes", s.nodeCount()).
			Str("pv", pvString(pv)).Msg("iteration complete")

		if onIteration != nil {
			onIteration(result)
		}

		if s.stopped() {
			break
		}
		if IsMateScore(score) && MateIn(score) > 0 && 2*MateIn(score)-1 <= depth {
			break // a mate shorter than or equal to the search horizon has been proven
		}
	}

	return last
}

// aspirationSearch narrows the window around the previous iteration's score
// once that estimate is available, re-searching with a wider window on
// failure; depth 1 (and any iteration with no prior score) always uses a
// full window since there is nothing yet to center on.
func (s *Searcher) aspirationSearch(b *board.Board, depth, prevScore int) (score int, aborted bool) {
	if depth <= 1 {
		score = s.negamax(b, depth, 0, -Infinity, Infinity)
		return score, s.stopped()
	}

	const windowStep = 50
	alpha, beta := prevScore-windowStep, prevScore+windowStep

	for {
		score = s.negamax(b, depth, 0, alpha, beta)
		if s.stopped() {
			return score, true
		}
		if score <= alpha {
			alpha -= windowStep * 4
			continue
		}
		if score >= beta {
			beta += windowStep * 4
			continue
		}
		return score, false
	}
}

// reconstructPV walks the transposition table's best-move chain from the
// root, truncating when an entry is missing or the same key reappears (a
// cycle through a repeated position, which would otherwise loop forever).
func reconstructPV(b *board.Board, table *tt.Table, maxLen int) []board.Move {
	pv := make([]board.Move, 0, maxLen)
	seen := make(map[uint64]bool)
	work := b.Clone()

	for len(pv) < maxLen {
		key := work.Key()
		if seen[key] {
			break
		}
		seen[key] = true

		found, _, _, _, move := table.Probe(key)
		if !found || move == 0 {
			break
		}
		m := board.Move(move)
		if ok, _ := work.Make(m); !ok {
			break
		}
		pv = append(pv, m)
	}
	return pv
}

func pvString(pv []board.Move) string {
	s := ""
	for i, m := range pv {
		if i > 0 {
			s += " "
		}
		s += m.String()
	}
	return s
}

package search

import (
	"corvidchess/board"
	"corvidchess/eval"
	"corvidchess/tt"
)

// Searcher owns everything a single search call needs beyond the Board
// itself: the shared transposition table, killer-move table, node/time
// bookkeeping, and the repetition history used for draw detection. It is not
// safe for concurrent use -- one Searcher runs one search at a time, with no
// locking around its own mutable state.
type Searcher struct {
	tt      *tt.Table
	killers killers

	nodes    uint64
	stop     *int32
	deadline deadlineCheck

	history []uint64 // game history plus the in-search path, for repetition detection
}

// NewSearcher builds a Searcher against a shared transposition table. gameKeys
// is the Zobrist key of every position reached so far this game (including
// the current one), oldest first; the searcher appends to a private copy as
// it walks the tree and never mutates the caller's slice.
func NewSearcher(table *tt.Table, gameKeys []uint64, stop *int32) *Searcher {
	s := &Searcher{tt: table, stop: stop}
	s.history = append(s.history, gameKeys...)
	return s
}

func (s *Searcher) nodeCount() uint64 { return s.nodes }

// stopped polls the cooperative cancellation flag. It is checked at node
// entry only, so a search never aborts mid-node with the board in a
// partially made state.
func (s *Searcher) stopped() bool {
	if s.nodes&1023 == 0 && s.deadline.expired() {
		return true
	}
	return s.stop != nil && loadStop(s.stop)
}

func (s *Searcher) repeated(key uint64) bool {
	count := 0
	for _, k := range s.history {
		if k == key {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

// negamax is the alpha-beta/PVS core. ply counts from the root of this
// search call (not the game), and feeds killer-table indexing and mate-score
// encoding. Every node's best move is written to the transposition table, so
// the root driver reconstructs the principal variation afterward by walking
// those entries rather than threading a PV line through the recursion.
func (s *Searcher) negamax(b *board.Board, depth, ply, alpha, beta int) int {
	s.nodes++

	if ply > 0 {
		if b.HalfmoveClock() >= 100 || s.repeated(b.Key()) || b.HasInsufficientMaterial() {
			return DrawScore
		}
	}

	if depth <= 0 {
		return s.quiescence(b, alpha, beta, ply)
	}

	if s.stopped() {
		return alpha
	}

	inCheck := b.InCheck(b.SideToMove())
	if inCheck {
		depth++ // search checks one ply deeper to avoid missing forced lines
	}

	key := b.Key()
	var ttMove board.Move
	if found, score, ttDepth, bound, move := s.tt.Probe(key); found {
		ttMove = board.Move(move)
		if ttDepth >= depth {
			adjusted := untagMateForProbe(score, ply)
			if tt.Usable(bound, adjusted, alpha, beta) {
				return adjusted
			}
		}
	}

	// Null-move pruning: if passing the turn entirely still leaves the
	// opponent no better than beta, the position is so good a real move
	// will not fall below beta either. Skipped in check and near mate
	// scores, where the null-move assumption (zugzwang aside) breaks down.
	if !inCheck && depth >= 3 && ply > 0 && !IsMateScore(beta) && hasNonPawnMaterial(b, b.SideToMove()) {
		st := b.MakeNull()
		s.history = append(s.history, b.Key())
		score := -s.negamax(b, depth-1-2, ply+1, -beta, -beta+1)
		s.history = s.history[:len(s.history)-1]
		b.UnmakeNull(st)
		if score >= beta {
			return beta
		}
	}

	moves := b.GeneratePseudoLegal(make([]board.Move, 0, 48))
	moves = orderMoves(b, moves, ttMove, &s.killers, ply)

	bestScore := -Infinity
	var bestMove board.Move
	legalCount := 0
	bound := tt.Upper

	for i, m := range moves {
		ok, st := b.Make(m)
		if !ok {
			continue
		}
		legalCount++
		s.history = append(s.history, b.Key())

		var score int
		if i == 0 || legalCount == 1 {
			score = -s.negamax(b, depth-1, ply+1, -beta, -alpha)
		} else {
			score = -s.negamax(b, depth-1, ply+1, -alpha-1, -alpha)
			if score > alpha && score < beta {
				score = -s.negamax(b, depth-1, ply+1, -beta, -alpha)
			}
		}

		s.history = s.history[:len(s.history)-1]
		b.Unmake(m, st)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
			bound = tt.Exact
		}
		if alpha >= beta {
			if !m.Flag().IsCapture() {
				s.killers.add(ply, m)
			}
			bound = tt.Lower
			break
		}
	}

	if legalCount == 0 {
		if inCheck {
			return -MateScore + ply
		}
		return DrawScore
	}

	s.tt.Store(key, depth, tagMateForStore(bestScore, ply), bound, tt.Move(bestMove))
	return bestScore
}

func hasNonPawnMaterial(b *board.Board, c board.Color) bool {
	return b.PieceBitboard(board.MakePiece(c, board.Knight)) != 0 ||
		b.PieceBitboard(board.MakePiece(c, board.Bishop)) != 0 ||
		b.PieceBitboard(board.MakePiece(c, board.Rook)) != 0 ||
		b.PieceBitboard(board.MakePiece(c, board.Queen)) != 0
}

// evaluate is the static evaluator quiescence uses for its stand-pat score.
func evaluate(b *board.Board) int { return eval.Evaluate(b) }

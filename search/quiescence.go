package search

import "corvidchess/board"

// quiescence extends the search over captures and queen promotions past the
// nominal horizon, so the static evaluator is never trusted on a position
// where an immediate recapture would swing the score -- the horizon effect.
func (s *Searcher) quiescence(b *board.Board, alpha, beta, ply int) int {
	s.nodes++

	standPat := evaluate(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	if ply >= MaxPly {
		return alpha
	}

	moves := b.GenerateCaptures(make([]board.Move, 0, 16))
	moves = orderMoves(b, moves, board.NoMove, &s.killers, ply)

	for _, m := range moves {
		// A capture that loses material even in the best case for the
		// attacker cannot raise alpha once stand-pat has already been
		// folded in, so skip it without spending a node on it.
		if !m.Flag().IsPromotion() && standPat+see(b, m) <= alpha {
			continue
		}
		ok, st := b.Make(m)
		if !ok {
			continue
		}
		score := -s.quiescence(b, -beta, -alpha, ply+1)
		b.Unmake(m, st)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// Package eval implements the PeSTO tapered evaluator: piece-square tables
// for the midgame and endgame, blended by a material-derived phase.
package eval

import "corvidchess/board"

// phaseWeight gives each non-pawn, non-king piece kind's contribution to the
// game phase; summed across both colors it ranges from 24 (full material) to
// 0 (bare kings and pawns).
var phaseWeight = [7]int{0, 0, 1, 1, 2, 4, 0}

const maxPhase = 24

// Evaluate scores the position from White's perspective in centipawns,
// positive meaning White is better, then negates for Black to move so the
// result is usable directly by a negamax searcher.
func Evaluate(b *board.Board) int {
	mg, eg, phase := 0, 0, 0

	for kind := board.Pawn; kind <= board.King; kind++ {
		whitePieces := b.PieceBitboard(board.MakePiece(board.White, kind))
		for p := whitePieces; p != 0; {
			sq := p.PopLSB()
			mg += mgTable[kind][sq]
			eg += egTable[kind][sq]
			phase += phaseWeight[kind]
		}
		blackPieces := b.PieceBitboard(board.MakePiece(board.Black, kind))
		for p := blackPieces; p != 0; {
			sq := p.PopLSB()
			mirrored := int(sq) ^ 56
			mg -= mgTable[kind][mirrored]
			eg -= egTable[kind][mirrored]
			phase += phaseWeight[kind]
		}
	}

	if phase > maxPhase {
		phase = maxPhase
	}
	score := (mg*phase + eg*(maxPhase-phase)) / maxPhase

	if b.SideToMove() == board.Black {
		return -score
	}
	return score
}

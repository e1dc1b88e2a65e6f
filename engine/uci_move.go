package engine

import "corvidchess/board"

// parseUCIMove parses a UCI move string (source square, destination square,
// optional lowercase promotion letter) and resolves it against the current
// position's pseudo-legal move list, since the string alone does not carry
// the flag (capture, en passant, castle, promotion kind) the board needs.
func parseUCIMove(b *board.Board, uci string) (board.Move, bool) {
	if len(uci) < 4 || len(uci) > 5 {
		return board.NoMove, false
	}
	from, ok := board.ParseSquareName(uci[0:2])
	if !ok {
		return board.NoMove, false
	}
	to, ok := board.ParseSquareName(uci[2:4])
	if !ok {
		return board.NoMove, false
	}

	var promo byte
	if len(uci) == 5 {
		promo = uci[4]
	}

	for _, m := range b.GeneratePseudoLegal(make([]board.Move, 0, 48)) {
		if m.From() != from || m.To() != to {
			continue
		}
		if promo == 0 {
			if !m.Flag().IsPromotion() {
				return m, true
			}
			continue
		}
		if k := m.Flag().PromotedKind(); k != board.NoKind && promoLetterMatches(k, promo) {
			return m, true
		}
	}
	return board.NoMove, false
}

func promoLetterMatches(k board.PieceKind, letter byte) bool {
	switch letter {
	case 'n':
		return k == board.Knight
	case 'b':
		return k == board.Bishop
	case 'r':
		return k == board.Rook
	case 'q':
		return k == board.Queen
	default:
		return false
	}
}

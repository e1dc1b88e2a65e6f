package search

import "corvidchess/board"

// seePieceValue is the static-exchange value table used for quiescence
// capture pruning; it is deliberately coarser than eval's tapered tables since
// SEE only prunes captures, it does not score positions.
var seePieceValue = [7]int{0, 100, 300, 300, 500, 900, 5000}

// attackersTo returns every piece of either color attacking sq given occ,
// recomputed from scratch against the supplied occupancy so that removing an
// attacker from occ naturally reveals the slider behind it (an x-ray) with no
// separate bookkeeping needed.
func attackersTo(b *board.Board, sq board.Square, occ board.Bitboard) board.Bitboard {
	var attackers board.Bitboard
	for _, c := range [2]board.Color{board.White, board.Black} {
		attackers |= board.PawnAttacks(c.Other(), sq) & b.PieceBitboard(board.MakePiece(c, board.Pawn))
		attackers |= board.KnightAttacks(sq) & b.PieceBitboard(board.MakePiece(c, board.Knight))
		attackers |= board.KingAttacks(sq) & b.PieceBitboard(board.MakePiece(c, board.King))
		rooksQueens := b.PieceBitboard(board.MakePiece(c, board.Rook)) | b.PieceBitboard(board.MakePiece(c, board.Queen))
		attackers |= board.RookAttacks(sq, occ) & rooksQueens
		bishopsQueens := b.PieceBitboard(board.MakePiece(c, board.Bishop)) | b.PieceBitboard(board.MakePiece(c, board.Queen))
		attackers |= board.BishopAttacks(sq, occ) & bishopsQueens
	}
	return attackers & occ
}

// see runs Static Exchange Evaluation on the capture (or en passant) move m:
// the net material swing after every possible recapture on m.To() is played
// out in ascending attacker-value order, from both sides, stopping as soon as
// a side would rather not continue the exchange.
func see(b *board.Board, m board.Move) int {
	to := m.To()
	from := m.From()

	var gain [32]int
	depth := 0

	captured := b.PieceAt(to)
	if m.Flag() == board.EnPassant {
		captured = board.MakePiece(b.SideToMove().Other(), board.Pawn)
	}
	gain[0] = seePieceValue[captured.Kind()]

	occ := b.AllOccupied()
	occ &^= from.Bit()
	attacker := b.PieceAt(from).Kind()
	side := b.SideToMove().Other()

	for {
		depth++
		gain[depth] = seePieceValue[attacker] - gain[depth-1]
		if maxInt(-gain[depth-1], gain[depth]) < 0 {
			break
		}

		attackers := attackersTo(b, to, occ)
		nextBB, nextKind := minAttacker(b, attackers, side, occ)
		if nextBB == 0 {
			break
		}
		occ &^= nextBB
		attacker = nextKind
		side = side.Other()
	}

	// gain[depth] is speculative (it assumes one more recapture that was
	// either pruned or has no attacker), so the fold starts one entry below it.
	for depth > 1 {
		depth--
		gain[depth-1] = -maxInt(-gain[depth-1], gain[depth])
	}
	return gain[0]
}

func minAttacker(b *board.Board, attackers board.Bitboard, side board.Color, occ board.Bitboard) (board.Bitboard, board.PieceKind) {
	for _, k := range [6]board.PieceKind{board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen, board.King} {
		bb := attackers & b.PieceBitboard(board.MakePiece(side, k)) & occ
		if bb != 0 {
			return board.Bitboard(1) << bb.LSB(), k
		}
	}
	return 0, board.NoKind
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package board

// Make applies m to the board in place. It returns ok=false (and leaves the
// board exactly as it found it, including Zobrist key) if the move would
// leave the mover's own king in check -- the standard make-then-test-then-
// maybe-unmake legality pattern, which avoids a separate legality pre-pass
// over every pseudo-legal move.
//
// On success, the caller owns the returned undoState and must eventually pass
// it to Unmake to restore the board. Make never allocates and does not push
// anything onto the board's history slice; callers that chain many moves keep
// their own stack of undoState values.
func (b *Board) Make(m Move) (ok bool, st undoState) {
	us := b.side
	them := us.Other()
	from, to, flag := m.From(), m.To(), m.Flag()

	st = undoState{
		move:           m,
		captureSquare:  to,
		castling:       b.castling,
		epSquare:       b.epSquare,
		halfmoveClock:  b.halfmoveClock,
		fullmoveNumber: b.fullmoveNumber,
		key:            b.key,
	}

	mover := b.removePiece(from)

	if flag == EnPassant {
		st.captureSquare = MakeSquare(from.Rank(), to.File())
		st.captured = b.removePiece(st.captureSquare)
	} else if flag.IsCapture() {
		st.captured = b.removePiece(to)
	}

	if promo := flag.PromotedKind(); promo != NoKind {
		b.placePiece(to, MakePiece(us, promo))
	} else {
		b.placePiece(to, mover)
	}

	switch flag {
	case KingCastle:
		rookFrom := kingsideRookFrom[us]
		rook := b.removePiece(rookFrom)
		b.placePiece(Square(to-1), rook)
	case QueenCastle:
		rookFrom := queensideRookFrom[us]
		rook := b.removePiece(rookFrom)
		b.placePiece(Square(to+1), rook)
	}

	b.key ^= zobristCastling[b.castling]
	b.castling &^= castlingClearMask(from) | castlingClearMask(to)
	b.key ^= zobristCastling[b.castling]

	if b.epSquare != NoSquare {
		b.key ^= zobristEnPassantFile[b.epSquare.File()]
	}
	if flag == DoublePawnPush {
		b.epSquare = MakeSquare((from.Rank()+to.Rank())/2, from.File())
		b.key ^= zobristEnPassantFile[b.epSquare.File()]
	} else {
		b.epSquare = NoSquare
	}

	if mover.Kind() == Pawn || flag.IsCapture() {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	if us == Black {
		b.fullmoveNumber++
	}

	b.side = them
	b.key ^= zobristSideToMove

	if b.InCheck(us) {
		b.unmakeRaw(st)
		return false, undoState{}
	}

	return true, st
}

// Unmake reverses the effect of the Make call that produced st. It must be
// called with the same board state (and only once) that Make returned it
// from; callers that chain many moves typically keep a stack of st values
// alongside their own move list.
func (b *Board) Unmake(m Move, st undoState) {
	b.unmakeRaw(st)
}

func (b *Board) unmakeRaw(st undoState) {
	us := b.side.Other() // the side that made the move we're undoing
	from, to, flag := st.move.From(), st.move.To(), st.move.Flag()

	b.side = us
	b.castling = st.castling
	b.epSquare = st.epSquare
	b.halfmoveClock = st.halfmoveClock
	b.fullmoveNumber = st.fullmoveNumber

	switch flag {
	case KingCastle:
		rook := b.removePiece(Square(to - 1))
		b.placePiece(kingsideRookFrom[us], rook)
	case QueenCastle:
		rook := b.removePiece(Square(to + 1))
		b.placePiece(queensideRookFrom[us], rook)
	}

	moved := b.removePiece(to)
	if flag.PromotedKind() != NoKind {
		moved = MakePiece(us, Pawn)
	}
	b.placePiece(from, moved)

	if flag == EnPassant {
		b.placePiece(st.captureSquare, st.captured)
	} else if flag.IsCapture() {
		b.placePiece(to, st.captured)
	}

	b.key = st.key
}

// castlingClearMask returns the castling rights that are voided by the king
// or rook leaving (or a rook being captured on) a given square.
func castlingClearMask(sq Square) CastlingRights {
	switch sq {
	case 4:
		return WhiteKingside | WhiteQueenside
	case 60:
		return BlackKingside | BlackQueenside
	case 7:
		return WhiteKingside
	case 0:
		return WhiteQueenside
	case 63:
		return BlackKingside
	case 56:
		return BlackQueenside
	default:
		return 0
	}
}

// MakeNull flips the side to move and clears the en-passant target without
// moving any piece, for null-move pruning in search. It returns the undo
// state needed by UnmakeNull.
func (b *Board) MakeNull() undoState {
	st := undoState{epSquare: b.epSquare, key: b.key}
	if b.epSquare != NoSquare {
		b.key ^= zobristEnPassantFile[b.epSquare.File()]
		b.epSquare = NoSquare
	}
	b.side = b.side.Other()
	b.key ^= zobristSideToMove
	return st
}

// UnmakeNull reverses MakeNull.
func (b *Board) UnmakeNull(st undoState) {
	b.side = b.side.Other()
	b.epSquare = st.epSquare
	b.key = st.key
}

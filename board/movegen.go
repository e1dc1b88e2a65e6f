package board

// GeneratePseudoLegal appends every pseudo-legal move for the side to move
// onto dst and returns the extended slice. "Pseudo-legal" means every rule is
// honored except that the mover's own king may be left in check; make()
// rejects those at apply time.
func (b *Board) GeneratePseudoLegal(dst []Move) []Move {
	dst = b.generatePawnMoves(dst, false)
	dst = b.generateKnightMoves(dst, false)
	dst = b.generateSliderMoves(dst, Bishop, false)
	dst = b.generateSliderMoves(dst, Rook, false)
	dst = b.generateSliderMoves(dst, Queen, false)
	dst = b.generateKingMoves(dst, false)
	dst = b.generateCastling(dst)
	return dst
}

// GenerateCaptures appends every pseudo-legal capturing move (including
// capturing promotions and en passant) plus queen promotions, for use by
// quiescence search.
func (b *Board) GenerateCaptures(dst []Move) []Move {
	dst = b.generatePawnMoves(dst, true)
	dst = b.generateKnightMoves(dst, true)
	dst = b.generateSliderMoves(dst, Bishop, true)
	dst = b.generateSliderMoves(dst, Rook, true)
	dst = b.generateSliderMoves(dst, Queen, true)
	dst = b.generateKingMoves(dst, true)
	return dst
}

// GenerateLegal returns only the moves that survive make()/unmake(), i.e. that
// do not leave the mover's own king in check.
func (b *Board) GenerateLegal(dst []Move) []Move {
	pseudo := b.GeneratePseudoLegal(dst[:0])
	legal := dst[:0]
	for _, m := range pseudo {
		if ok, st := b.Make(m); ok {
			b.Unmake(m, st)
			legal = append(legal, m)
		}
	}
	return legal
}

func (b *Board) generateKnightMoves(dst []Move, capturesOnly bool) []Move {
	us := b.side
	own := b.occupied[us]
	enemy := b.occupied[us.Other()]
	knights := b.pieces[MakePiece(us, Knight)]
	for knights != 0 {
		from := knights.PopLSB()
		targets := knightAttacks[from] &^ own
		dst = emitTargets(dst, from, targets, enemy, capturesOnly)
	}
	return dst
}

func (b *Board) generateKingMoves(dst []Move, capturesOnly bool) []Move {
	us := b.side
	own := b.occupied[us]
	enemy := b.occupied[us.Other()]
	kingBB := b.pieces[MakePiece(us, King)]
	from := kingBB.LSB()
	targets := kingAttacks[from] &^ own
	return emitTargets(dst, from, targets, enemy, capturesOnly)
}

func (b *Board) generateSliderMoves(dst []Move, kind PieceKind, capturesOnly bool) []Move {
	us := b.side
	own := b.occupied[us]
	enemy := b.occupied[us.Other()]
	occ := b.AllOccupied()
	pieces := b.pieces[MakePiece(us, kind)]
	for pieces != 0 {
		from := pieces.PopLSB()
		var targets Bitboard
		switch kind {
		case Bishop:
			targets = BishopAttacks(from, occ)
		case Rook:
			targets = RookAttacks(from, occ)
		case Queen:
			targets = QueenAttacks(from, occ)
		}
		targets &^= own
		dst = emitTargets(dst, from, targets, enemy, capturesOnly)
	}
	return dst
}

func emitTargets(dst []Move, from Square, targets, enemy Bitboard, capturesOnly bool) []Move {
	captures := targets & enemy
	for captures != 0 {
		to := captures.PopLSB()
		dst = append(dst, NewMove(from, to, Capture))
	}
	if !capturesOnly {
		quiets := targets &^ enemy
		for quiets != 0 {
			to := quiets.PopLSB()
			dst = append(dst, NewMove(from, to, Quiet))
		}
	}
	return dst
}

var promoFlags = [4]MoveFlag{PromoKnight, PromoBishop, PromoRook, PromoQueen}
var promoCaptureFlags = [4]MoveFlag{PromoCaptureKnight, PromoCaptureBishop, PromoCaptureRook, PromoCaptureQueen}

func (b *Board) generatePawnMoves(dst []Move, capturesOnly bool) []Move {
	us := b.side
	them := us.Other()
	occAll := b.AllOccupied()
	enemy := b.occupied[them]
	pawns := b.pieces[MakePiece(us, Pawn)]

	var forward func(Bitboard) Bitboard
	var startRank, promoRank int
	if us == White {
		forward = north
		startRank, promoRank = 1, 7
	} else {
		forward = south
		startRank, promoRank = 6, 0
	}

	for p := pawns; p != 0; {
		from := p.PopLSB()
		rank := from.Rank()

		// Captures (including promotion captures) are generated regardless of
		// capturesOnly, since quiescence cares about them.
		targets := pawnAttacks[us][from] & enemy
		for targets != 0 {
			to := targets.PopLSB()
			if to.Rank() == promoRank {
				for _, f := range promoCaptureFlags {
					dst = append(dst, NewMove(from, to, f))
				}
			} else {
				dst = append(dst, NewMove(from, to, Capture))
			}
		}

		// En passant.
		if b.epSquare != NoSquare && pawnAttacks[us][from].Has(b.epSquare) {
			dst = append(dst, NewMove(from, b.epSquare, EnPassant))
		}

		if capturesOnly {
			// Quiescence still wants queen promotions even though they are quiet.
			oneBB := forward(from.Bit())
			if oneBB != 0 && !occAll.Has(oneBB.LSB()) && oneBB.LSB().Rank() == promoRank {
				dst = append(dst, NewMove(from, oneBB.LSB(), PromoQueen))
			}
			continue
		}

		oneBB := forward(from.Bit())
		if oneBB == 0 || occAll.Has(oneBB.LSB()) {
			continue
		}
		one := oneBB.LSB()
		if one.Rank() == promoRank {
			for _, f := range promoFlags {
				dst = append(dst, NewMove(from, one, f))
			}
			continue
		}
		dst = append(dst, NewMove(from, one, Quiet))

		if rank == startRank {
			twoBB := forward(oneBB)
			if twoBB != 0 && !occAll.Has(twoBB.LSB()) {
				dst = append(dst, NewMove(from, twoBB.LSB(), DoublePawnPush))
			}
		}
	}
	return dst
}

// castling destination/transit squares, indexed by color.
var (
	kingsideKingTo  = [2]Square{6, 62}
	kingsideRookFrom = [2]Square{7, 63}
	kingsideTransit = [2]Bitboard{Bitboard(1)<<5 | Bitboard(1)<<6, Bitboard(1)<<61 | Bitboard(1)<<62}

	queensideKingTo  = [2]Square{2, 58}
	queensideRookFrom = [2]Square{0, 56}
	queensideEmpty   = [2]Bitboard{Bitboard(1)<<1 | Bitboard(1)<<2 | Bitboard(1)<<3, Bitboard(1)<<57 | Bitboard(1)<<58 | Bitboard(1)<<59}
	queensideTransit = [2]Bitboard{Bitboard(1)<<2 | Bitboard(1)<<3, Bitboard(1)<<58 | Bitboard(1)<<59}

	kingHome = [2]Square{4, 60}
)

func (b *Board) generateCastling(dst []Move) []Move {
	us := b.side
	occAll := b.AllOccupied()
	from := kingHome[us]
	if b.Kings(us).LSB() != from {
		return dst // king has moved off its home square; castling flag would already be cleared, but be defensive
	}
	opp := us.Other()

	if b.castling&kingsideRight(us) != 0 &&
		occAll&kingsideTransit[us] == 0 &&
		b.pieceAt[kingsideRookFrom[us]] == MakePiece(us, Rook) &&
		!b.IsAttacked(from, opp, occAll) &&
		!b.IsAttacked(Square(from+1), opp, occAll) &&
		!b.IsAttacked(kingsideKingTo[us], opp, occAll) {
		dst = append(dst, NewMove(from, kingsideKingTo[us], KingCastle))
	}

	if b.castling&queensideRight(us) != 0 &&
		occAll&queensideEmpty[us] == 0 &&
		b.pieceAt[queensideRookFrom[us]] == MakePiece(us, Rook) &&
		!b.IsAttacked(from, opp, occAll) &&
		!b.IsAttacked(Square(from-1), opp, occAll) &&
		!b.IsAttacked(queensideKingTo[us], opp, occAll) {
		dst = append(dst, NewMove(from, queensideKingTo[us], QueenCastle))
	}

	return dst
}

package board

// Board is the mutable aggregate position: bitboards per piece, occupancy,
// side to move, castling rights, en-passant target, the fifty-move clock, the
// full move counter and the running Zobrist key. Make and Unmake mutate it in
// place without copying it: Make returns each move's undo record to its
// caller, who hands it back to Unmake. The history slice is not written by
// Make or Unmake.
type Board struct {
	pieces   [16]Bitboard // indexed by Piece (kind, or kind|8 for Black)
	occupied [2]Bitboard  // per-color occupancy
	pieceAt  [64]Piece

	side     Color
	castling CastlingRights
	epSquare Square

	halfmoveClock  int
	fullmoveNumber int
	key            uint64

	history []undoState
}

// undoState carries exactly what make() cannot recompute cheaply: it is
// pushed before a move is applied and popped by unmake to restore the board
// bit-for-bit, including the Zobrist key.
type undoState struct {
	move           Move
	captured       Piece
	captureSquare  Square // differs from move.To() only for en passant
	castling       CastlingRights
	epSquare       Square
	halfmoveClock  int
	fullmoveNumber int
	key            uint64
}

// NewEmpty returns a Board with no pieces placed; callers normally go through
// ParseFEN or NewGame instead.
func NewEmpty() *Board {
	b := &Board{epSquare: NoSquare}
	b.history = make([]undoState, 0, 256)
	return b
}

// NewGame returns a Board set to the standard starting position.
func NewGame() *Board {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		panic("board: start FEN must parse: " + err.Error())
	}
	return b
}

// Occupancy returns the occupancy bitboard for one color.
func (b *Board) Occupancy(c Color) Bitboard { return b.occupied[c] }

// AllOccupied returns the union of both colors' occupancy.
func (b *Board) AllOccupied() Bitboard { return b.occupied[White] | b.occupied[Black] }

// PieceAt returns the piece occupying a square, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece { return b.pieceAt[sq] }

// PieceBitboard returns the bitboard of a specific piece.
func (b *Board) PieceBitboard(p Piece) Bitboard { return b.pieces[p] }

// Kings returns the bitboard of kings for a color (always exactly one bit).
func (b *Board) Kings(c Color) Bitboard { return b.pieces[MakePiece(c, King)] }

// SideToMove reports whose turn it is.
func (b *Board) SideToMove() Color { return b.side }

// Castling reports the current castling-rights mask.
func (b *Board) Castling() CastlingRights { return b.castling }

// EnPassant reports the current en-passant target square, or NoSquare.
func (b *Board) EnPassant() Square { return b.epSquare }

// HalfmoveClock reports the fifty-move-rule counter.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber reports the move counter (incremented after Black moves).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// Key returns the board's running Zobrist hash.
func (b *Board) Key() uint64 { return b.key }

func (b *Board) placePiece(sq Square, p Piece) {
	b.pieceAt[sq] = p
	bit := sq.Bit()
	b.pieces[p] |= bit
	b.occupied[p.Color()] |= bit
	b.key ^= zobristPieceSquare[p][sq]
}

func (b *Board) removePiece(sq Square) Piece {
	p := b.pieceAt[sq]
	if p == NoPiece {
		return NoPiece
	}
	bit := sq.Bit()
	b.pieceAt[sq] = NoPiece
	b.pieces[p] &^= bit
	b.occupied[p.Color()] &^= bit
	b.key ^= zobristPieceSquare[p][sq]
	return p
}

// Validate cross-checks the piece bitboards, per-color occupancy and Zobrist
// key against the pieceAt array. It is used by tests and debug assertions, not
// on any hot path.
func (b *Board) Validate() bool {
	var pieces [16]Bitboard
	var occ [2]Bitboard
	for sq := Square(0); sq < 64; sq++ {
		p := b.pieceAt[sq]
		if p == NoPiece {
			continue
		}
		pieces[p] |= sq.Bit()
		occ[p.Color()] |= sq.Bit()
	}
	if occ != b.occupied {
		return false
	}
	for p := 0; p < 16; p++ {
		if pieces[p] != b.pieces[p] {
			return false
		}
	}
	if occ[White]&occ[Black] != 0 {
		return false
	}
	return b.key == b.ComputeZobrist()
}

// Clone returns a deep copy of the board, including its history stack. The
// search never uses this on its hot path (make/unmake mutate in place); it
// exists for callers -- the façade and the protocol front-end -- that need an
// independent position to probe without disturbing the game board.
func (b *Board) Clone() *Board {
	c := *b
	c.history = append([]undoState(nil), b.history...)
	return &c
}

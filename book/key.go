// Package book probes a Polyglot-format opening book image for the current
// position and returns a weighted pick among the matching entries.
package book

import (
	"math/rand"

	"corvidchess/board"
)

// Polyglot keys every position with its own random table, independent of the
// engine's internal Zobrist constants, so a book built by any Polyglot-
// compatible tool stays valid regardless of how the engine hashes internally.
// The real published Polyglot constants are not reproduced here -- without a
// way to verify a from-memory transcription against the authoritative table,
// a wrong constant would silently corrupt every lookup. Keying instead off a
// fixed, documented seed keeps the scheme internally consistent (a book built
// with this same table probes correctly) at the cost of compatibility with
// third-party Polyglot books; see the design notes for the tradeoff.
const (
	castleKeyOffset    = 768
	enPassantKeyOffset = 772
	turnKeyOffset      = 780
	tableSize          = 781
)

var polyglotTable [tableSize]uint64

func init() {
	seed := uint64(0x9E3779B97F4A7C15)
	rnd := rand.New(rand.NewSource(int64(seed)))
	for i := range polyglotTable {
		polyglotTable[i] = rnd.Uint64()
	}
}

// pieceIndex maps a board piece to Polyglot's piece ordering: black pawn,
// white pawn, black knight, white knight, ... black king, white king.
func pieceIndex(p board.Piece) int {
	return (int(p.Kind())-1)*2 + colorBit(p.Color())
}

func colorBit(c board.Color) int {
	if c == board.White {
		return 1
	}
	return 0
}

// Key computes the Polyglot hash for the board's current position.
func Key(b *board.Board) uint64 {
	var key uint64
	for sq := board.Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p == board.NoPiece {
			continue
		}
		idx := 64*pieceIndex(p) + 8*sq.Rank() + sq.File()
		key ^= polyglotTable[idx]
	}

	rights := b.Castling()
	if rights&board.WhiteKingside != 0 {
		key ^= polyglotTable[castleKeyOffset]
	}
	if rights&board.WhiteQueenside != 0 {
		key ^= polyglotTable[castleKeyOffset+1]
	}
	if rights&board.BlackKingside != 0 {
		key ^= polyglotTable[castleKeyOffset+2]
	}
	if rights&board.BlackQueenside != 0 {
		key ^= polyglotTable[castleKeyOffset+3]
	}

	if ep := b.EnPassant(); ep != board.NoSquare && enPassantCaptureExists(b, ep) {
		key ^= polyglotTable[enPassantKeyOffset+ep.File()]
	}

	if b.SideToMove() == board.White {
		key ^= polyglotTable[turnKeyOffset]
	}

	return key
}

// enPassantCaptureExists reports whether the side to move actually has a
// pawn adjacent to the ep file able to make the capture -- Polyglot omits the
// en-passant term entirely when no such pawn exists, even though the board's
// own en-passant target square is still set.
func enPassantCaptureExists(b *board.Board, ep board.Square) bool {
	us := b.SideToMove()
	capturerRank := ep.Rank() - 1
	if us == board.Black {
		capturerRank = ep.Rank() + 1
	}
	pawn := board.MakePiece(us, board.Pawn)
	for _, df := range [2]int{-1, 1} {
		f := ep.File() + df
		if f < 0 || f > 7 {
			continue
		}
		sq := board.MakeSquare(capturerRank, f)
		if b.PieceAt(sq) == pawn {
			return true
		}
	}
	return false
}

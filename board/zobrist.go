package board

import "math/rand"

// Zobrist constants: one per (piece, square), one for side-to-move, sixteen
// for the castling-rights mask, and eight for the en-passant file. The board
// maintains its key incrementally by XORing these in and out as state changes;
// ComputeZobrist (full recomputation) exists only to check that incremental
// maintenance hasn't drifted.
var zobristPieceSquare [16][64]uint64
var zobristCastling [16]uint64
var zobristEnPassantFile [8]uint64
var zobristSideToMove uint64

func init() {
	rnd := rand.New(rand.NewSource(0xC0FFEE_1337))
	for p := 0; p < 16; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPieceSquare[p][sq] = rnd.Uint64()
		}
	}
	for c := 0; c < 16; c++ {
		zobristCastling[c] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassantFile[f] = rnd.Uint64()
	}
	zobristSideToMove = rnd.Uint64()
}

// ComputeZobrist recomputes the Zobrist key from scratch; used by tests and by
// Validate, never on the incremental make/unmake hot path.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		if p := b.pieceAt[sq]; p != NoPiece {
			key ^= zobristPieceSquare[p][sq]
		}
	}
	if b.side == Black {
		key ^= zobristSideToMove
	}
	key ^= zobristCastling[b.castling]
	if b.epSquare != NoSquare {
		key ^= zobristEnPassantFile[b.epSquare.File()]
	}
	return key
}

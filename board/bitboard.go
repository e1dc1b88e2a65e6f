package board

import "math/bits"

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the index of the least-significant set bit; callers must not
// call it on an empty bitboard.
func (b Bitboard) LSB() Square { return Square(bits.TrailingZeros64(uint64(b))) }

// PopLSB clears and returns the least-significant set bit.
func (b *Bitboard) PopLSB() Square {
	s := b.LSB()
	*b &= *b - 1
	return s
}

// Has reports whether the square's bit is set.
func (b Bitboard) Has(s Square) bool { return b&s.Bit() != 0 }

const (
	fileA Bitboard = 0x0101010101010101
	fileH Bitboard = 0x8080808080808080
	rank1 Bitboard = 0x00000000000000FF
	rank8 Bitboard = 0xFF00000000000000
)

// north/south/east/west shift a bitboard one square, masking off wraparound.
func north(b Bitboard) Bitboard { return b << 8 }
func south(b Bitboard) Bitboard { return b >> 8 }
func east(b Bitboard) Bitboard  { return (b &^ fileH) << 1 }
func west(b Bitboard) Bitboard  { return (b &^ fileA) >> 1 }

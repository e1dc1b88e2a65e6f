package board

import "strings"

// MoveFlag classifies the side effects of a Move beyond the plain from->to
// displacement.
type MoveFlag uint8

const (
	Quiet MoveFlag = iota
	DoublePawnPush
	KingCastle
	QueenCastle
	Capture
	EnPassant
	PromoKnight
	PromoBishop
	PromoRook
	PromoQueen
	PromoCaptureKnight
	PromoCaptureBishop
	PromoCaptureRook
	PromoCaptureQueen
)

// IsPromotion reports whether the flag represents any promotion, captured or not.
func (f MoveFlag) IsPromotion() bool { return f >= PromoKnight }

// IsCapture reports whether the flag represents a capture (including en passant
// and capturing promotions).
func (f MoveFlag) IsCapture() bool {
	return f == Capture || f == EnPassant || f >= PromoCaptureKnight
}

// PromotedKind returns the piece kind a promotion flag produces, or NoKind.
func (f MoveFlag) PromotedKind() PieceKind {
	switch f {
	case PromoKnight, PromoCaptureKnight:
		return Knight
	case PromoBishop, PromoCaptureBishop:
		return Bishop
	case PromoRook, PromoCaptureRook:
		return Rook
	case PromoQueen, PromoCaptureQueen:
		return Queen
	default:
		return NoKind
	}
}

// Move is a move encoded in 16 bits: 6-bit origin, 6-bit destination, 4-bit
// flag. It carries no piece information; make() recovers that from the board
// at apply time. This keeps move lists compact and cache-friendly.
type Move uint16

const (
	moveToShift   = 6
	moveFlagShift = 12
	moveSquareBit = 0x3F
	moveFlagBits  = 0xF
)

// NewMove packs a from/to/flag triple into a Move.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(uint16(from)&moveSquareBit |
		(uint16(to)&moveSquareBit)<<moveToShift |
		(uint16(flag)&moveFlagBits)<<moveFlagShift)
}

// NoMove is the zero Move, used as a sentinel (a1a1 quiet, never legal).
const NoMove Move = 0

// From returns the move's origin square.
func (m Move) From() Square { return Square(m & moveSquareBit) }

// To returns the move's destination square.
func (m Move) To() Square { return Square((m >> moveToShift) & moveSquareBit) }

// Flag returns the move's special-effect flag.
func (m Move) Flag() MoveFlag { return MoveFlag((m >> moveFlagShift) & moveFlagBits) }

var promoLetter = map[PieceKind]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}

// String renders the move in UCI form: source square, destination square, and
// an optional lowercase promotion letter, e.g. "e7e8q".
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if k := m.Flag().PromotedKind(); k != NoKind {
		sb.WriteByte(promoLetter[k])
	}
	return sb.String()
}

var letterToPromo = map[byte]PieceKind{'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen}

// ParseSquareName parses an algebraic square name such as "e4".
func ParseSquareName(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return MakeSquare(int(rank-'1'), int(file-'a')), true
}

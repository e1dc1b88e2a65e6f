package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenPieceKind = map[byte]PieceKind{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// ParseFEN parses a standard six-field FEN string into a fresh Board. The
// halfmove clock and fullmove number may be omitted (they default to 0 and
// 1); any other malformed input is rejected rather than repaired.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: FEN needs at least 4 fields, got %d", len(fields))
	}

	b := NewEmpty()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("board: FEN placement must have 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				kind, ok := fenPieceKind[toLower(ch)]
				if !ok {
					return nil, fmt.Errorf("board: FEN has unrecognized piece char %q", ch)
				}
				if file >= 8 {
					return nil, fmt.Errorf("board: FEN rank %d overflows 8 files", 8-i)
				}
				color := White
				if ch >= 'a' && ch <= 'z' {
					color = Black
				}
				b.placePiece(MakeSquare(rank, file), MakePiece(color, kind))
				file++
			}
		}
		if file != 8 {
			return nil, fmt.Errorf("board: FEN rank %d covers %d files, want 8", 8-i, file)
		}
	}

	switch fields[1] {
	case "w":
		b.side = White
	case "b":
		b.side = Black
		b.key ^= zobristSideToMove
	default:
		return nil, fmt.Errorf("board: FEN side-to-move must be w or b, got %q", fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			switch ch {
			case 'K':
				b.castling |= WhiteKingside
			case 'Q':
				b.castling |= WhiteQueenside
			case 'k':
				b.castling |= BlackKingside
			case 'q':
				b.castling |= BlackQueenside
			default:
				return nil, fmt.Errorf("board: FEN has invalid castling char %q", ch)
			}
		}
	}
	b.key ^= zobristCastling[b.castling]

	b.epSquare = NoSquare
	if fields[3] != "-" {
		sq, ok := ParseSquareName(fields[3])
		if !ok {
			return nil, fmt.Errorf("board: FEN has invalid en-passant square %q", fields[3])
		}
		b.epSquare = sq
		b.key ^= zobristEnPassantFile[sq.File()]
	}

	b.halfmoveClock = 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("board: FEN has invalid halfmove clock: %w", err)
		}
		b.halfmoveClock = n
	}

	b.fullmoveNumber = 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("board: FEN has invalid fullmove number: %w", err)
		}
		b.fullmoveNumber = n
	}

	if b.pieces[MakePiece(White, King)].PopCount() != 1 || b.pieces[MakePiece(Black, King)].PopCount() != 1 {
		return nil, fmt.Errorf("board: FEN must place exactly one king per side")
	}

	return b, nil
}

func toLower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}

// ToFEN serializes the board back to canonical FEN form.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.pieceAt[MakeSquare(rank, file)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.side == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.castling == 0 {
		sb.WriteByte('-')
	} else {
		if b.castling&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if b.castling&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if b.castling&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if b.castling&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.epSquare.String())

	fmt.Fprintf(&sb, " %d %d", b.halfmoveClock, b.fullmoveNumber)
	return sb.String()
}

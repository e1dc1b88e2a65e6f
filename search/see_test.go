package search

import (
	"testing"

	"corvidchess/board"
)

func mustParseFEN(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("parse FEN %q: %v", fen, err)
	}
	return b
}

func findMove(t *testing.T, b *board.Board, uci string) board.Move {
	t.Helper()
	for _, m := range b.GeneratePseudoLegal(make([]board.Move, 0, 48)) {
		if m.String() == uci {
			return m
		}
	}
	t.Fatalf("move %q not found among pseudo-legal moves", uci)
	return board.NoMove
}

func TestSEEBishopTakesDefendedKnightBreaksEven(t *testing.T) {
	b := mustParseFEN(t, "6k1/4q1p1/4n3/8/2B5/8/8/6K1 w - - 0 1")
	m := findMove(t, b, "c4e6")

	// Bishop takes knight (+300), queen recaptures bishop (-300): net zero,
	// since the queen sitting on e7 still guards e6 once the knight is gone.
	if got := see(b, m); got != 0 {
		t.Errorf("see(c4e6) = %d, want 0", got)
	}
}

func TestSEEHandlesEnPassantCapture(t *testing.T) {
	b := mustParseFEN(t, "6k1/8/8/3pP3/8/8/8/6K1 w - d6 0 1")
	m := findMove(t, b, "e5d6")
	if m.Flag() != board.EnPassant {
		t.Fatalf("expected en passant flag, got %v", m.Flag())
	}

	if got := see(b, m); got != seePieceValue[board.Pawn] {
		t.Errorf("see(en passant) = %d, want %d", got, seePieceValue[board.Pawn])
	}
}

func TestSEEWinningCaptureIsPositive(t *testing.T) {
	b := mustParseFEN(t, "6k1/8/8/3q4/8/8/4P3/6K1 w - - 0 1")
	// Not a real capture here, but a free-standing queen attacked by nothing
	// else should score the full piece value when captured by a pawn.
	b = mustParseFEN(t, "6k1/8/3q4/4P3/8/8/8/6K1 w - - 0 1")
	m := findMove(t, b, "e5d6")
	if got := see(b, m); got != seePieceValue[board.Queen] {
		t.Errorf("see(pawn takes undefended queen) = %d, want %d", got, seePieceValue[board.Queen])
	}
}

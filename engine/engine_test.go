package engine

import (
	"testing"

	"corvidchess/board"
)

const smallTable = 1 << 20 // 1 MiB: plenty for these short positions

func TestApplyMoveAndFEN(t *testing.T) {
	e := New(smallTable)

	if !e.ApplyMove("e2e4") {
		t.Fatal("e2e4 should be legal from startpos")
	}
	if !e.ApplyMove("e7e5") {
		t.Fatal("e7e5 should be legal after e2e4")
	}
	if e.ApplyMove("e1f2") {
		t.Fatal("e1f2 is not a legal king move: White's own pawn still stands on f2")
	}

	want := "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2"
	if got := e.FEN(); got != want {
		t.Errorf("FEN = %q, want %q", got, want)
	}
}

func TestSetPositionStartposStopsAtFirstIllegalMove(t *testing.T) {
	e := New(smallTable)
	ok := e.SetPositionStartpos([]string{"e2e4", "e7e5", "d1d3"})
	if ok {
		t.Fatal("expected SetPositionStartpos to report failure on an illegal move")
	}
	// e2e4 and e7e5 should still have been applied.
	if e.FEN() != "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2" {
		t.Errorf("moves before the illegal one should remain applied, got FEN %q", e.FEN())
	}
}

func TestGoDepthFindsMateInOne(t *testing.T) {
	e := New(smallTable)
	if !e.SetPositionFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1") {
		t.Fatal("FEN should parse")
	}
	res := e.GoDepth(4)
	if res.BestMove != "a1a8" {
		t.Errorf("bestmove = %q, want a1a8", res.BestMove)
	}
	if !res.Mate || res.MateIn != 1 {
		t.Errorf("expected mate in 1, got mate=%v matein=%d", res.Mate, res.MateIn)
	}
}

func TestStatusReportsCheckmate(t *testing.T) {
	e := New(smallTable)
	// The position one ply after the mate-in-one in TestGoDepthFindsMateInOne:
	// a back-rank mate with the rook on a8 and Black's own pawns blocking
	// every other escape square.
	if !e.SetPositionFEN("R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 1 1") {
		t.Fatal("FEN should parse")
	}
	if got := e.Status().String(); got != "checkmate" {
		t.Errorf("status = %q, want checkmate", got)
	}
}

func TestStatusReportsThreefoldRepetition(t *testing.T) {
	e := New(smallTable)
	// Shuffling a knight out and back reproduces the starting position every
	// two round trips, with no pawn move or capture to reset the clock.
	cycle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for i := 0; i < 2; i++ {
		for _, mv := range cycle {
			if !e.ApplyMove(mv) {
				t.Fatalf("move %q should be legal", mv)
			}
		}
	}
	if got := e.Status(); got != board.DrawThreefold {
		t.Errorf("status = %v, want DrawThreefold", got)
	}
	if got := e.Status().String(); got != "draw_threefold" {
		t.Errorf("status string = %q, want draw_threefold", got)
	}
}

func TestIsMoveLegalDoesNotMutateBoard(t *testing.T) {
	e := New(smallTable)
	before := e.FEN()
	if !e.IsMoveLegal("e2e4") {
		t.Fatal("e2e4 should be legal from startpos")
	}
	if e.FEN() != before {
		t.Errorf("IsMoveLegal mutated the board: before %q after %q", before, e.FEN())
	}
}

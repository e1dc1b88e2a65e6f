package facade

import "testing"

func TestMakeMoveRoundTrip(t *testing.T) {
	h := New()

	res := h.MakeMove("e2e4")
	if !res.Valid {
		t.Fatal("e2e4 should be a valid opening move")
	}
	if res.Status != "active" {
		t.Errorf("status = %q, want active", res.Status)
	}

	bad := h.MakeMove("e4e5")
	if bad.Valid {
		t.Fatal("e4e5 should be illegal: it is Black's turn, and White cannot move twice in a row")
	}
}

func TestSetPositionStartposWithMoves(t *testing.T) {
	h := New()
	if !h.SetPositionStartpos("e2e4 a7a6 e4e5 d7d5") {
		t.Fatal("move sequence should be legal")
	}
	if !h.IsMoveLegal("e5d6") {
		t.Fatal("e5d6 should be a legal en passant capture")
	}
}

func TestSideToMoveFlipsAfterMove(t *testing.T) {
	h := New()
	if h.SideToMove() != "white" {
		t.Errorf("side to move = %q, want white", h.SideToMove())
	}
	h.MakeMove("e2e4")
	if h.SideToMove() != "black" {
		t.Errorf("side to move = %q, want black", h.SideToMove())
	}
}

func TestGetLegalMovesForSquare(t *testing.T) {
	h := New()
	moves := h.GetLegalMovesForSquare("e2")
	if len(moves) != 2 {
		t.Fatalf("expected 2 legal moves from e2 on the opening position, got %v", moves)
	}
}

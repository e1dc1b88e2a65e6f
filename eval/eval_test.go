package eval

import (
	"testing"

	"corvidchess/board"
)

func TestSymmetricPositionIsZero(t *testing.T) {
	b := board.NewGame()
	if got := Evaluate(b); got != 0 {
		t.Errorf("startpos should evaluate to 0 by symmetry, got %d", got)
	}
}

func TestFlippingColorsNegatesScore(t *testing.T) {
	// Both positions have White to move, so Evaluate returns White's view of
	// each and the colour-flipped position must score as its negation.
	white := "4k3/8/8/8/8/3P4/8/4K3 w - - 0 1"
	black := "4k3/8/3p4/8/8/8/8/4K3 w - - 0 1"

	wb, err := board.ParseFEN(white)
	if err != nil {
		t.Fatal(err)
	}
	bb, err := board.ParseFEN(black)
	if err != nil {
		t.Fatal(err)
	}

	if Evaluate(wb) != -Evaluate(bb) {
		t.Errorf("vertical flip + color swap should negate score: %d vs %d", Evaluate(wb), Evaluate(bb))
	}
}

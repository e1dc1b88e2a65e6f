package board

import "testing"

func TestStatusCheckmate(t *testing.T) {
	b, err := ParseFEN("R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 1 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := b.Status(nil); got != Checkmate {
		t.Errorf("status = %v, want Checkmate", got)
	}
}

func TestStatusStalemate(t *testing.T) {
	b, err := ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := b.Status(nil); got != Stalemate {
		t.Errorf("status = %v, want Stalemate", got)
	}
}

func TestStatusInsufficientMaterialSameColorBishops(t *testing.T) {
	// A bishop on a dark square for each side; neither can force mate.
	b, err := ParseFEN("6k1/8/8/4b3/8/8/3B4/6K1 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := b.Status(nil); got != DrawInsufficientMaterial {
		t.Errorf("status = %v, want DrawInsufficientMaterial", got)
	}
}

func TestStatusThreefoldRepetition(t *testing.T) {
	b := NewGame()

	keys := []uint64{b.Key()}
	cycle := [][2]Square{{6, 21}, {62, 45}, {21, 6}, {45, 62}} // g1f3, g8f6, f3g1, f6g8

	for i := 0; i < 2; i++ {
		for _, step := range cycle {
			from, to := step[0], step[1]
			var applied bool
			for _, m := range b.GeneratePseudoLegal(make([]Move, 0, 64)) {
				if m.From() == from && m.To() == to {
					ok, _ := b.Make(m)
					if !ok {
						continue
					}
					applied = true
					break
				}
			}
			if !applied {
				t.Fatalf("no legal move from %v to %v", from, to)
			}
			keys = append(keys, b.Key())
		}
	}

	repetitions := func(key uint64) int {
		count := 0
		for _, k := range keys {
			if k == key {
				count++
			}
		}
		return count
	}

	if got := b.Status(repetitions); got != DrawThreefold {
		t.Errorf("status = %v, want DrawThreefold", got)
	}
}

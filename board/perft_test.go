package board

import "testing"

func TestPerftInitialPosition(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		{5, 4865609},
	}
	for _, c := range cases {
		b := NewGame()
		got := Perft(b, c.depth)
		if got != c.want {
			t.Errorf("perft(startpos, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	b, err := ParseFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	got := Perft(b, 4)
	if got != 4085603 {
		t.Errorf("perft(kiwipete, 4) = %d, want 4085603", got)
	}
}

func TestPerftPosition3(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	b, err := ParseFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	got := Perft(b, 5)
	if got != 674624 {
		t.Errorf("perft(position3, 5) = %d, want 674624", got)
	}
}

package search

import (
	"testing"

	"corvidchess/board"
	"corvidchess/tt"
)

func runFixedDepth(t *testing.T, fen string, depth int) Result {
	t.Helper()
	b, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	table := tt.New(1 << 20)
	stop := new(int32)
	return Run(b, table, []uint64{b.Key()}, Limits{Depth: depth}, stop, nil)
}

func TestMateInOne(t *testing.T) {
	res := runFixedDepth(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1", 4)
	if res.BestMove.String() != "a1a8" {
		t.Errorf("bestmove = %s, want a1a8", res.BestMove.String())
	}
	if !res.Mate || res.MateIn != 1 {
		t.Errorf("expected mate in 1, got mate=%v mateIn=%d score=%d", res.Mate, res.MateIn, res.Score)
	}
}

func TestMateInTwo(t *testing.T) {
	res := runFixedDepth(t, "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 0 1", 4)
	if res.BestMove.String() != "h5f7" {
		t.Errorf("bestmove = %s, want h5f7", res.BestMove.String())
	}
	if !res.Mate {
		t.Fatal("expected a mate score")
	}
	if res.Score > MateScore-3 {
		t.Errorf("score %d should be at most MateScore-3", res.Score)
	}
}

func TestIterativeDeepeningMonotonicDepth(t *testing.T) {
	b := board.NewGame()
	table := tt.New(1 << 20)
	stop := new(int32)
	var depths []int
	Run(b, table, []uint64{b.Key()}, Limits{Depth: 4}, stop, func(r Result) {
		depths = append(depths, r.Depth)
	})
	for i := 1; i < len(depths); i++ {
		if depths[i] <= depths[i-1] {
			t.Fatalf("depths not increasing: %v", depths)
		}
	}
}

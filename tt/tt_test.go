package tt

import "testing"

func TestStoreProbeRoundTrip(t *testing.T) {
	table := New(1 << 16)
	table.Store(0xABCD1234, 5, 120, Exact, Move(42))

	found, score, depth, bound, move := table.Probe(0xABCD1234)
	if !found {
		t.Fatal("expected entry to be found")
	}
	if score != 120 || depth != 5 || bound != Exact || move != 42 {
		t.Errorf("got score=%d depth=%d bound=%v move=%d", score, depth, bound, move)
	}
}

func TestProbeMissOnIndexCollisionWithDifferentTag(t *testing.T) {
	table := New(1 << 16) // 4096 entries, mask 0xFFF
	table.Store(0x1, 1, 1, Exact, Move(1))

	// Same low 12 bits (same index) but different high bits (different tag).
	otherKey := uint64(1) | (uint64(1) << 40)
	if found, _, _, _, _ := table.Probe(otherKey); found {
		t.Error("expected a miss for a differing tag at the same index")
	}
}

func TestReplacementPolicyPrefersDeeper(t *testing.T) {
	table := New(1 << 16)
	table.Store(0x99, 2, 10, Exact, Move(1))
	table.Store(0x99, 1, 20, Exact, Move(2)) // shallower, same age: should not replace
	_, score, depth, _, _ := table.Probe(0x99)
	if depth != 2 || score != 10 {
		t.Errorf("shallower store should not replace deeper: got depth=%d score=%d", depth, score)
	}

	table.Store(0x99, 3, 30, Exact, Move(3)) // deeper: should replace
	_, score, depth, _, _ = table.Probe(0x99)
	if depth != 3 || score != 30 {
		t.Errorf("deeper store should replace: got depth=%d score=%d", depth, score)
	}
}

func TestNewSearchAgeAllowsOverwrite(t *testing.T) {
	table := New(1 << 16)
	table.Store(0x42, 10, 1, Exact, Move(1))
	table.NewSearch()
	table.Store(0x42, 1, 2, Exact, Move(2)) // shallower but a new search age
	_, score, depth, _, _ := table.Probe(0x42)
	if depth != 1 || score != 2 {
		t.Errorf("new-age store should replace regardless of depth: got depth=%d score=%d", depth, score)
	}
}

func TestUsableBoundSemantics(t *testing.T) {
	if !Usable(Exact, 5, -10, 10) {
		t.Error("Exact should always be usable")
	}
	if Usable(Lower, 5, -10, 10) {
		t.Error("Lower below beta should not be usable")
	}
	if !Usable(Lower, 15, -10, 10) {
		t.Error("Lower at/above beta should be usable")
	}
	if Usable(Upper, 5, -10, 10) {
		t.Error("Upper above alpha should not be usable")
	}
	if !Usable(Upper, -15, -10, 10) {
		t.Error("Upper at/below alpha should be usable")
	}
}

package book

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"corvidchess/board"
)

// buildImage encodes a single Polyglot record with the given key, move
// encoding and weight, mimicking a minimal real Polyglot book image.
func buildImage(t *testing.T, key uint64, moveEnc uint16, weight uint16) []byte {
	t.Helper()
	rec := make([]byte, recordSize)
	binary.BigEndian.PutUint64(rec[0:8], key)
	binary.BigEndian.PutUint16(rec[8:10], moveEnc)
	binary.BigEndian.PutUint16(rec[10:12], weight)
	return rec
}

func TestProbeReturnsLegalBookMove(t *testing.T) {
	b := board.NewGame()
	key := Key(b)

	// e2e4: from e2 (rank1,file4) to e4 (rank3,file4), no promotion.
	fromRow, fromFile := 1, 4
	toRow, toFile := 3, 4
	enc := uint16(toFile) | uint16(toRow)<<3 | uint16(fromFile)<<6 | uint16(fromRow)<<9

	data := buildImage(t, key, enc, 10)
	bk, err := Load(data)
	if err != nil {
		t.Fatal(err)
	}

	m, ok := bk.Probe(b, rand.New(rand.NewSource(1)))
	if !ok {
		t.Fatal("expected a book hit")
	}
	if m.String() != "e2e4" {
		t.Errorf("decoded move = %s, want e2e4", m.String())
	}
}

func TestProbeMissReturnsFalse(t *testing.T) {
	b := board.NewGame()
	data := buildImage(t, Key(b)+1, 0, 1) // deliberately wrong key
	bk, err := Load(data)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := bk.Probe(b, rand.New(rand.NewSource(1))); ok {
		t.Fatal("expected no book hit for a non-matching key")
	}
}

func TestProbeRejectsPseudoLegalButIllegalMove(t *testing.T) {
	// White king on d1, black rook on e3: Kd1-e2 is a pseudo-legal king move
	// (e2 is empty and not occupied by White) but walks the king onto the
	// rook's open file, so Make must reject it.
	b, err := board.ParseFEN("k7/8/8/8/8/4r3/8/3K4 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	fromRow, fromFile := 0, 3 // d1
	toRow, toFile := 1, 4     // e2
	enc := uint16(toFile) | uint16(toRow)<<3 | uint16(fromFile)<<6 | uint16(fromRow)<<9

	data := buildImage(t, Key(b), enc, 10)
	bk, err := Load(data)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := bk.Probe(b, rand.New(rand.NewSource(1))); ok {
		t.Fatal("expected Probe to reject a book move that leaves its own king in check")
	}
}

func TestLoadRejectsUnsortedImage(t *testing.T) {
	a := buildImage(t, 200, 0, 1)
	b := buildImage(t, 100, 0, 1)
	if _, err := Load(append(a, b...)); err == nil {
		t.Fatal("expected Load to reject unsorted entries")
	}
}

package board

import "testing"

// walkAndVerify recurses through every legal move to the given depth,
// checking at every node that make/unmake round-trips exactly and that the
// incrementally maintained Zobrist key matches a from-scratch recomputation.
func walkAndVerify(t *testing.T, b *Board, depth int) {
	if depth == 0 {
		return
	}
	before := *b
	beforeHistLen := len(b.history)

	moves := b.GeneratePseudoLegal(make([]Move, 0, 64))
	for _, m := range moves {
		ok, st := b.Make(m)
		if !ok {
			continue
		}
		if b.key != b.ComputeZobrist() {
			t.Fatalf("zobrist drift after %s: incremental %x, recomputed %x", m, b.key, b.ComputeZobrist())
		}
		walkAndVerify(t, b, depth-1)
		b.Unmake(m, st)

		if b.side != before.side || b.castling != before.castling || b.epSquare != before.epSquare ||
			b.halfmoveClock != before.halfmoveClock || b.fullmoveNumber != before.fullmoveNumber ||
			b.key != before.key || b.pieces != before.pieces || b.occupied != before.occupied ||
			b.pieceAt != before.pieceAt || len(b.history) != beforeHistLen {
			t.Fatalf("make/unmake round-trip failed for %s", m)
		}
	}
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	positions := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/q7/2B5/8/PPPQNnPP/RNB1K2R w KQ - 1 8",
	}
	for _, fen := range positions {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		walkAndVerify(t, b, 3)
	}
}

func TestEnPassantCapture(t *testing.T) {
	b := NewGame()
	apply := func(from, to string, flag MoveFlag) {
		f, _ := ParseSquareName(from)
		tt, _ := ParseSquareName(to)
		ok, _ := b.Make(NewMove(f, tt, flag))
		if !ok {
			t.Fatalf("move %s%s rejected", from, to)
		}
	}
	apply("e2", "e4", DoublePawnPush)
	apply("a7", "a6", Quiet)
	apply("e4", "e5", Quiet)
	apply("d7", "d5", DoublePawnPush)

	epSq, ok := ParseSquareName("d6")
	if !ok || b.EnPassant() != epSq {
		t.Fatalf("expected en-passant target d6, got %v", b.EnPassant())
	}

	from, _ := ParseSquareName("e5")
	to, _ := ParseSquareName("d6")
	ok, _ = b.Make(NewMove(from, to, EnPassant))
	if !ok {
		t.Fatal("e5d6 en passant should be legal")
	}
	d5, _ := ParseSquareName("d5")
	if b.PieceAt(d5) != NoPiece {
		t.Fatal("captured pawn should be removed from d5")
	}
	if b.EnPassant() != NoSquare {
		t.Fatal("en-passant target should clear after the capture")
	}
	if b.HalfmoveClock() != 0 {
		t.Fatalf("halfmove clock should reset on capture, got %d", b.HalfmoveClock())
	}
}

func TestCastlingRightsLost(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	b, err := ParseFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	from, _ := ParseSquareName("e1")
	to, _ := ParseSquareName("e2")
	ok, _ := b.Make(NewMove(from, to, Quiet))
	if !ok {
		t.Fatal("e1e2 should be legal")
	}
	if b.Castling()&(WhiteKingside|WhiteQueenside) != 0 {
		t.Fatal("king move should clear both white castling rights")
	}

	fen2 := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	b2, _ := ParseFEN(fen2)
	from2, _ := ParseSquareName("a1")
	to2, _ := ParseSquareName("a2")
	ok2, _ := b2.Make(NewMove(from2, to2, Quiet))
	if !ok2 {
		t.Fatal("a1a2 should be legal")
	}
	if b2.Castling()&WhiteQueenside != 0 {
		t.Fatal("a-rook move should clear white queenside right")
	}
	if b2.Castling()&WhiteKingside == 0 {
		t.Fatal("a-rook move should not clear white kingside right")
	}
}

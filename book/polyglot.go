package book

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"sort"

	"corvidchess/board"
)

const recordSize = 16

// entry is one 16-byte Polyglot record: an 8-byte big-endian key, a 2-byte
// move encoding, a 2-byte weight, and a 4-byte learn field the engine does
// not use.
type entry struct {
	key    uint64
	move   uint16
	weight uint16
}

// Book is an in-memory, pre-sorted Polyglot book image. The core never reads
// book files itself -- acquisition and distribution of the byte image is
// outside this package's concern -- it only consumes bytes handed to it.
type Book struct {
	entries []entry
}

// Load parses a raw Polyglot book image. Entries are expected sorted
// ascending by key, as the format requires; Load does not re-sort, but does
// verify the ordering so a malformed image fails fast rather than silently
// returning wrong probes.
func Load(data []byte) (*Book, error) {
	if len(data)%recordSize != 0 {
		return nil, fmt.Errorf("book: image length %d is not a multiple of %d", len(data), recordSize)
	}
	n := len(data) / recordSize
	entries := make([]entry, n)
	for i := 0; i < n; i++ {
		rec := data[i*recordSize : (i+1)*recordSize]
		entries[i] = entry{
			key:    binary.BigEndian.Uint64(rec[0:8]),
			move:   binary.BigEndian.Uint16(rec[8:10]),
			weight: binary.BigEndian.Uint16(rec[10:12]),
		}
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].key < entries[i-1].key {
			return nil, fmt.Errorf("book: entries not sorted ascending by key at index %d", i)
		}
	}
	return &Book{entries: entries}, nil
}

// matchRange returns the contiguous slice of entries sharing the given key,
// located by binary search since the image is sorted.
func (bk *Book) matchRange(key uint64) []entry {
	lo := sort.Search(len(bk.entries), func(i int) bool { return bk.entries[i].key >= key })
	hi := sort.Search(len(bk.entries), func(i int) bool { return bk.entries[i].key > key })
	return bk.entries[lo:hi]
}

// Probe looks up the current position's Polyglot key and, if the book has
// entries for it, returns a weighted-random pick decoded and validated as a
// legal move in the position. ok is false when the book has no entries for
// this position or the picked entry does not decode to a legal move; the
// other entries are not tried in that case.
func (bk *Book) Probe(b *board.Board, rnd *rand.Rand) (m board.Move, ok bool) {
	matches := bk.matchRange(Key(b))
	if len(matches) == 0 {
		return board.NoMove, false
	}

	totalWeight := 0
	for _, e := range matches {
		totalWeight += int(e.weight)
	}

	pick := matches[0]
	if totalWeight > 0 {
		target := rnd.Intn(totalWeight)
		running := 0
		for _, e := range matches {
			running += int(e.weight)
			if target < running {
				pick = e
				break
			}
		}
	}

	decoded, ok := decodeMove(b, pick.move)
	if !ok {
		return board.NoMove, false
	}
	if !isLegalInPosition(b, decoded) {
		return board.NoMove, false
	}
	return decoded, true
}

// isLegalInPosition plays m on a throwaway clone of b and reports whether it
// was accepted. Pseudo-legal generation alone cannot tell a legal move from
// one that leaves its own king in check, so this is the step that actually
// rules that out before a book move is returned straight to the caller with
// no search behind it.
func isLegalInPosition(b *board.Board, m board.Move) bool {
	clone := b.Clone()
	ok, _ := clone.Make(m)
	return ok
}

// decodeMove turns a Polyglot move encoding into an internal Move, validated
// as pseudo-legal in the given position and flagged to match board's own
// move representation (promotion kind, castling, etc). Polyglot represents
// castling as the king moving onto its own rook's square; that is translated
// here to the board package's king-to-g/c-file convention.
func decodeMove(b *board.Board, enc uint16) (board.Move, bool) {
	toFile := int(enc & 7)
	toRow := int((enc >> 3) & 7)
	fromFile := int((enc >> 6) & 7)
	fromRow := int((enc >> 9) & 7)
	promo := int((enc >> 12) & 7)

	from := board.MakeSquare(fromRow, fromFile)
	to := board.MakeSquare(toRow, toFile)

	mover := b.PieceAt(from)
	if mover == board.NoPiece {
		return board.NoMove, false
	}

	if mover.Kind() == board.King {
		if from == 4 && to == 7 {
			to = board.MakeSquare(0, 6) // e1h1 -> g1
		} else if from == 4 && to == 0 {
			to = board.MakeSquare(0, 2) // e1a1 -> c1
		} else if from == 60 && to == 63 {
			to = board.MakeSquare(7, 6) // e8h8 -> g8
		} else if from == 60 && to == 56 {
			to = board.MakeSquare(7, 2) // e8a8 -> c8
		}
	}

	flag := classifyFlag(b, from, to, mover, promo)
	return matchGenerated(b, from, to, flag)
}

func classifyFlag(b *board.Board, from, to board.Square, mover board.Piece, promo int) board.MoveFlag {
	capture := b.PieceAt(to) != board.NoPiece

	if mover.Kind() == board.King {
		if from == 4 && to == 6 {
			return board.KingCastle
		}
		if from == 4 && to == 2 {
			return board.QueenCastle
		}
		if from == 60 && to == 62 {
			return board.KingCastle
		}
		if from == 60 && to == 58 {
			return board.QueenCastle
		}
	}

	if mover.Kind() == board.Pawn {
		if to == b.EnPassant() && !capture {
			return board.EnPassant
		}
		if absInt(to.Rank()-from.Rank()) == 2 {
			return board.DoublePawnPush
		}
		if promo >= 1 && promo <= 4 {
			kind := [5]board.MoveFlag{0, board.PromoKnight, board.PromoBishop, board.PromoRook, board.PromoQueen}[promo]
			if capture {
				return kind + (board.PromoCaptureKnight - board.PromoKnight)
			}
			return kind
		}
	}

	if capture {
		return board.Capture
	}
	return board.Quiet
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// matchGenerated cross-checks a decoded move against the real pseudo-legal
// move list rather than trusting the encoding blindly, so a corrupt or
// foreign book entry can never desync the board. This only rules out
// encodings that don't correspond to any pseudo-legal move at all; king
// safety is checked separately by isLegalInPosition.
func matchGenerated(b *board.Board, from, to board.Square, flag board.MoveFlag) (board.Move, bool) {
	for _, m := range b.GeneratePseudoLegal(make([]board.Move, 0, 48)) {
		if m.From() == from && m.To() == to && m.Flag() == flag {
			return m, true
		}
	}
	return board.NoMove, false
}

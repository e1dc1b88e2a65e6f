// Package tt implements the transposition table: a fixed-capacity,
// power-of-two-sized array of entries indexed by the low bits of the
// Zobrist key, replaced according to a depth/age policy and never resized
// at runtime.
package tt

import "math/bits"

// Bound classifies how an entry's score relates to the alpha-beta window
// that produced it.
type Bound uint8

const (
	NoBound Bound = iota
	Exact
	Lower
	Upper
)

// Move is kept as a bare uint16 so that tt does not import the board package;
// callers cast to/from board.Move at the boundary.
type Move uint16

type entry struct {
	tag   uint32 // high bits of the key, to detect an index collision
	move  Move
	score int16
	depth int8
	bound Bound
	age   uint8
}

// Table is a fixed-size, open-addressed transposition table. The zero Table
// is not usable; construct one with New.
type Table struct {
	entries []entry
	mask    uint64
	age     uint8
}

const defaultNativeBytes = 512 * 1024 * 1024
const defaultBrowserBytes = 64 * 1024 * 1024

const entrySize = 16 // approximate serialized size used for sizing, not unsafe.Sizeof

// New builds a table sized to the nearest power of two number of entries
// that fits within sizeBytes.
func New(sizeBytes int) *Table {
	n := sizeBytes / entrySize
	if n < 1 {
		n = 1
	}
	pow := 1 << uint(bits.Len64(uint64(n))-1)
	return &Table{entries: make([]entry, pow), mask: uint64(pow - 1)}
}

// NewNative builds a table at the default native build size (512 MiB).
func NewNative() *Table { return New(defaultNativeBytes) }

// NewBrowser builds a table at the default browser-embedding size (64 MiB).
func NewBrowser() *Table { return New(defaultBrowserBytes) }

// Clear empties every entry and resets the age counter; called on ucinewgame.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = entry{}
	}
	t.age = 0
}

// NewSearch bumps the age tag, marking every entry from the prior search as
// stale for replacement purposes without erasing its contents.
func (t *Table) NewSearch() {
	t.age++
}

func (t *Table) index(key uint64) uint64 { return key & t.mask }

func tagOf(key uint64) uint32 { return uint32(key >> 32) }

// Store inserts or replaces an entry for key, honoring the depth/age
// replacement policy: a slot is overwritten when the incoming entry is at
// least as deep as what's there, or the stored entry is from a stale search.
func (t *Table) Store(key uint64, depth int, score int, bound Bound, move Move) {
	idx := t.index(key)
	e := &t.entries[idx]
	if depth >= int(e.depth) || e.age != t.age {
		*e = entry{
			tag:   tagOf(key),
			move:  move,
			score: int16(score),
			depth: int8(depth),
			bound: bound,
			age:   t.age,
		}
	}
}

// Probe looks up key and reports whether it was found, along with the raw
// stored fields. Callers apply mate-distance ply adjustment themselves, since
// the table has no notion of the querying node's ply.
func (t *Table) Probe(key uint64) (found bool, score int, depth int, bound Bound, move Move) {
	idx := t.index(key)
	e := &t.entries[idx]
	if e.bound == NoBound || e.tag != tagOf(key) {
		return false, 0, 0, NoBound, 0
	}
	return true, int(e.score), int(e.depth), e.bound, e.move
}

// Usable applies the standard bound-vs-window test from a probe result: an
// Exact score is always usable; Lower/Upper only cut off when they already
// satisfy the window.
func Usable(bound Bound, score, alpha, beta int) bool {
	switch bound {
	case Exact:
		return true
	case Lower:
		return score >= beta
	case Upper:
		return score <= alpha
	default:
		return false
	}
}

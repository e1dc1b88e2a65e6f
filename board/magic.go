package board

import "math/rand"

// Magic bitboards give O(1) slider attack lookup. For each square and each
// slider kind we keep a relevant-occupancy mask, a magic multiplier, and a
// table of attack sets indexed by (occupancy & mask) * magic >> shift.
type magicEntry struct {
	mask  Bitboard
	magic uint64
	shift uint
	table []Bitboard
}

var rookMagics [64]magicEntry
var bishopMagics [64]magicEntry

var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func relevantRookMask(sq int) Bitboard {
	return (rookRays[sq][0] &^ rank8) | (rookRays[sq][1] &^ rank1) |
		(rookRays[sq][2] &^ fileH) | (rookRays[sq][3] &^ fileA)
}

func relevantBishopMask(sq int) Bitboard {
	edges := rank1 | rank8 | fileA | fileH
	return (bishopRays[sq][0] | bishopRays[sq][1] | bishopRays[sq][2] | bishopRays[sq][3]) &^ edges
}

// slidingAttacks computes the full attack set from sq given an occupancy, by
// ray-scanning in each of the four directions and stopping at (and including)
// the first blocker.
func slidingAttacks(sq int, occ Bitboard, dirs [4][2]int) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		attacks |= rayAttacks(sq, d, occ)
	}
	return attacks
}

// subsetsOf enumerates every subset of mask via the classic carry-rippler trick.
func subsetsOf(mask Bitboard) []Bitboard {
	subsets := make([]Bitboard, 0, 1<<uint(mask.PopCount()))
	var subset Bitboard
	for {
		subsets = append(subsets, subset)
		subset = (subset - mask) & mask
		if subset == 0 {
			break
		}
	}
	return subsets
}

// findMagic derives, by rejection sampling, a 64-bit multiplier that maps every
// subset of mask to a collision-free index in a table of size 1<<popcount(mask).
// Determinism is not required by the search itself, but the call site seeds a
// fixed-source PRNG so that repeated runs (and therefore perft/TT/book tests)
// see the same tables.
func findMagic(sq int, mask Bitboard, dirs [4][2]int, rnd *rand.Rand) (uint64, []Bitboard) {
	bits := mask.PopCount()
	shift := uint(64 - bits)
	subsets := subsetsOf(mask)
	attacksFor := make([]Bitboard, len(subsets))
	for i, s := range subsets {
		attacksFor[i] = slidingAttacks(sq, s, dirs)
	}

	table := make([]Bitboard, 1<<uint(bits))
	used := make([]bool, 1<<uint(bits))

	for attempt := 0; attempt < 100000000; attempt++ {
		magic := sparseRandom(rnd)
		if Bitboard((uint64(mask)*magic)>>56).PopCount() < 6 {
			continue // quick low-information reject, mirrors common magic-search heuristics
		}
		for i := range used {
			used[i] = false
		}
		ok := true
		for i, s := range subsets {
			idx := (uint64(s) * magic) >> shift
			if used[idx] {
				if table[idx] != attacksFor[i] {
					ok = false
					break
				}
			} else {
				used[idx] = true
				table[idx] = attacksFor[i]
			}
		}
		if ok {
			return magic, table
		}
	}
	panic("magic bitboard search exhausted its attempt budget")
}

// sparseRandom returns a 64-bit value with a low bit density, which empirically
// yields usable magic candidates far more often than uniform random values.
func sparseRandom(rnd *rand.Rand) uint64 {
	return rnd.Uint64() & rnd.Uint64() & rnd.Uint64()
}

func initMagics() {
	rnd := rand.New(rand.NewSource(0x5EED_B17B_0A4D))
	for sq := 0; sq < 64; sq++ {
		rMask := relevantRookMask(sq)
		rMagic, rTable := findMagic(sq, rMask, rookDirs, rnd)
		rookMagics[sq] = magicEntry{mask: rMask, magic: rMagic, shift: uint(64 - rMask.PopCount()), table: rTable}

		bMask := relevantBishopMask(sq)
		bMagic, bTable := findMagic(sq, bMask, bishopDirs, rnd)
		bishopMagics[sq] = magicEntry{mask: bMask, magic: bMagic, shift: uint(64 - bMask.PopCount()), table: bTable}
	}
}

func (m *magicEntry) attacks(occ Bitboard) Bitboard {
	idx := (uint64(occ&m.mask) * m.magic) >> m.shift
	return m.table[idx]
}

// RookAttacks returns the rook attack set from sq given the full-board occupancy.
func RookAttacks(sq Square, occ Bitboard) Bitboard { return rookMagics[sq].attacks(occ) }

// BishopAttacks returns the bishop attack set from sq given the full-board occupancy.
func BishopAttacks(sq Square, occ Bitboard) Bitboard { return bishopMagics[sq].attacks(occ) }

// QueenAttacks is the union of rook and bishop attacks from the same square
// and occupancy.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

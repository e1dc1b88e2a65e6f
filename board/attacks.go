package board

// knightAttacks, kingAttacks and pawnAttacks are precomputed non-slider attack
// sets, indexed by origin square (and, for pawns, by the attacking color).
var knightAttacks [64]Bitboard
var kingAttacks [64]Bitboard
var pawnAttacks [2][64]Bitboard

var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func initNonSliderAttacks() {
	for sq := 0; sq < 64; sq++ {
		rank, file := sq/8, sq%8

		var knight Bitboard
		for _, off := range knightOffsets {
			r, f := rank+off[0], file+off[1]
			if r >= 0 && r < 8 && f >= 0 && f < 8 {
				knight |= MakeSquare(r, f).Bit()
			}
		}
		knightAttacks[sq] = knight

		var king Bitboard
		for _, off := range kingOffsets {
			r, f := rank+off[0], file+off[1]
			if r >= 0 && r < 8 && f >= 0 && f < 8 {
				king |= MakeSquare(r, f).Bit()
			}
		}
		kingAttacks[sq] = king

		var whitePawn, blackPawn Bitboard
		if file > 0 {
			if rank < 7 {
				whitePawn |= MakeSquare(rank+1, file-1).Bit()
			}
			if rank > 0 {
				blackPawn |= MakeSquare(rank-1, file-1).Bit()
			}
		}
		if file < 7 {
			if rank < 7 {
				whitePawn |= MakeSquare(rank+1, file+1).Bit()
			}
			if rank > 0 {
				blackPawn |= MakeSquare(rank-1, file+1).Bit()
			}
		}
		pawnAttacks[White][sq] = whitePawn
		pawnAttacks[Black][sq] = blackPawn
	}
}

// rookRays/bishopRays hold, for each square and direction, every square along
// that ray excluding the origin. They back both the magic-mask construction
// and the plain ray-scan used to build each square's attack sets.
var rookRays [64][4]Bitboard   // N, S, E, W
var bishopRays [64][4]Bitboard // NE, NW, SE, SW

func initRays() {
	rookDirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs := [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	for sq := 0; sq < 64; sq++ {
		rank, file := sq/8, sq%8
		for d, dir := range rookDirs {
			var ray Bitboard
			r, f := rank+dir[0], file+dir[1]
			for r >= 0 && r < 8 && f >= 0 && f < 8 {
				ray |= MakeSquare(r, f).Bit()
				r += dir[0]
				f += dir[1]
			}
			rookRays[sq][d] = ray
		}
		for d, dir := range bishopDirs {
			var ray Bitboard
			r, f := rank+dir[0], file+dir[1]
			for r >= 0 && r < 8 && f >= 0 && f < 8 {
				ray |= MakeSquare(r, f).Bit()
				r += dir[0]
				f += dir[1]
			}
			bishopRays[sq][d] = ray
		}
	}
}

// rayAttacks scans from sq along dir, stopping at and including the first
// occupied square.
func rayAttacks(sq int, dir [2]int, occ Bitboard) Bitboard {
	var attacks Bitboard
	rank, file := sq/8, sq%8
	r, f := rank+dir[0], file+dir[1]
	for r >= 0 && r < 8 && f >= 0 && f < 8 {
		s := MakeSquare(r, f)
		attacks |= s.Bit()
		if occ.Has(s) {
			break
		}
		r += dir[0]
		f += dir[1]
	}
	return attacks
}

func init() {
	initNonSliderAttacks()
	initRays()
	initMagics()
}

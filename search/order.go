package search

import "corvidchess/board"

// MaxPly bounds the killer table and the search's recursion depth; plenty
// for any time control that will actually complete an iteration.
const MaxPly = 128

// pieceValue is used only for MVV-LVA ordering, not evaluation; it does not
// need to match the evaluator's tapered values.
var pieceValue = [7]int{0, 100, 320, 330, 500, 900, 20000}

// killers holds, per ply, the two most recent quiet moves that produced a
// beta cutoff. They are tried before other quiets since they are likely to
// cut off again in sibling nodes at the same depth.
type killers struct {
	slots [MaxPly][2]board.Move
}

func (k *killers) add(ply int, m board.Move) {
	if ply >= MaxPly {
		return
	}
	if k.slots[ply][0] == m {
		return
	}
	k.slots[ply][1] = k.slots[ply][0]
	k.slots[ply][0] = m
}

// orderMoves sorts moves in place: TT move first, then captures by MVV-LVA,
// then killers, then the remaining quiets in generation order. It mutates
// moves and returns it for chaining convenience.
func orderMoves(b *board.Board, moves []board.Move, ttMove board.Move, k *killers, ply int) []board.Move {
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = moveScore(b, m, ttMove, k, ply)
	}
	// Insertion sort: move lists are short (legal branching factor rarely
	// exceeds ~40), and it keeps equal-score moves in generation order.
	for i := 1; i < len(moves); i++ {
		for j := i; j > 0 && scores[j] > scores[j-1]; j-- {
			scores[j], scores[j-1] = scores[j-1], scores[j]
			moves[j], moves[j-1] = moves[j-1], moves[j]
		}
	}
	return moves
}

const (
	scoreTTMove    = 1_000_000
	scoreCaptureBase = 200_000
	scoreKiller1   = 90_000
	scoreKiller2   = 89_000
)

func moveScore(b *board.Board, m board.Move, ttMove board.Move, k *killers, ply int) int {
	if m == ttMove {
		return scoreTTMove
	}
	flag := m.Flag()
	if flag.IsCapture() {
		victim := b.PieceAt(m.To())
		if flag == board.EnPassant {
			victim = board.MakePiece(b.SideToMove().Other(), board.Pawn)
		}
		attacker := b.PieceAt(m.From())
		return scoreCaptureBase + pieceValue[victim.Kind()]*16 - pieceValue[attacker.Kind()]
	}
	if k.slots[minInt(ply, MaxPly-1)][0] == m {
		return scoreKiller1
	}
	if k.slots[minInt(ply, MaxPly-1)][1] == m {
		return scoreKiller2
	}
	return 0
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

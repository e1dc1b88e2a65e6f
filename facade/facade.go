// Package facade exposes the engine through the stateful, string/bool-only
// surface a browser embedding calls across a message-passing boundary: no
// operation here blocks or suspends partway through, and every result is a
// primitive value safe to serialize.
package facade

import (
	"strings"

	"corvidchess/board"
	"corvidchess/engine"
)

// Handle is the façade's stateful object; one per embedded game.
type Handle struct {
	eng *engine.Engine
}

// New constructs a Handle with the browser-sized (64 MiB) transposition
// table, small enough to keep a page embed's memory footprint reasonable.
func New() *Handle {
	return &Handle{eng: engine.New(engine.TableSizeBrowser)}
}

// NewGame resets the handle to a fresh starting position.
func (h *Handle) NewGame() { h.eng.NewGame() }

// SetPositionFEN replaces the position; false means fen was rejected and the
// prior position is unchanged.
func (h *Handle) SetPositionFEN(fen string) bool { return h.eng.SetPositionFEN(fen) }

// SetPositionStartpos resets to the initial position and replays a
// space-separated list of UCI moves.
func (h *Handle) SetPositionStartpos(movesStr string) bool {
	return h.eng.SetPositionStartpos(splitMoves(movesStr))
}

// ApplyMove applies a single UCI move to the current position.
func (h *Handle) ApplyMove(uci string) bool { return h.eng.ApplyMove(uci) }

// IsMoveLegal reports legality without mutating state.
func (h *Handle) IsMoveLegal(uci string) bool { return h.eng.IsMoveLegal(uci) }

// MoveResult is make_move's {valid, fen, status} return value.
type MoveResult struct {
	Valid  bool
	FEN    string
	Status string
}

// MakeMove applies uci and reports the resulting position and status in one
// round trip, which is the façade's primary "player made a move" entry point.
func (h *Handle) MakeMove(uci string) MoveResult {
	if !h.eng.ApplyMove(uci) {
		return MoveResult{Valid: false, FEN: h.eng.FEN(), Status: h.GetGameStatus()}
	}
	return MoveResult{Valid: true, FEN: h.eng.FEN(), Status: h.GetGameStatus()}
}

// GetLegalMoves lists every legal move from the current position in UCI form.
func (h *Handle) GetLegalMoves() []string { return h.eng.LegalMoves() }

// GetLegalMovesForSquare filters to moves originating at sq.
func (h *Handle) GetLegalMovesForSquare(sq string) []string { return h.eng.LegalMovesFromSquare(sq) }

// GoResult is go_depth/go_movetime's {bestmove, score, from_book} return value.
type GoResult struct {
	BestMove string
	Score    int
	FromBook bool
}

// GoDepth runs a fixed-depth search (after a book probe).
func (h *Handle) GoDepth(n int) GoResult {
	r := h.eng.GoDepth(n)
	return GoResult{BestMove: r.BestMove, Score: r.Score, FromBook: r.FromBook}
}

// GoMoveTime runs a time-bounded search (after a book probe).
func (h *Handle) GoMoveTime(ms int) GoResult {
	r := h.eng.GoMoveTime(ms)
	return GoResult{BestMove: r.BestMove, Score: r.Score, FromBook: r.FromBook}
}

// GetFEN returns the current position in FEN form.
func (h *Handle) GetFEN() string { return h.eng.FEN() }

// GetGameStatus reports the current position's terminal/non-terminal status
// as one of: active, checkmate, stalemate, draw_50move, draw_75move,
// draw_threefold, draw_fivefold, draw_dead.
func (h *Handle) GetGameStatus() string { return h.eng.Status().String() }

// SideToMove reports "white" or "black".
func (h *Handle) SideToMove() string {
	if h.eng.SideToMove() == board.White {
		return "white"
	}
	return "black"
}

// LoadBook installs a Polyglot book image for this handle.
func (h *Handle) LoadBook(data []byte) error { return h.eng.LoadBook(data) }

// Stop raises the cooperative cancellation flag for an in-flight search; in
// the browser embedding this is invoked by message-passing from the host
// thread while the engine itself finishes its current node before yielding.
func (h *Handle) Stop() { h.eng.Stop() }

func splitMoves(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}

// Package engine wires the board, search, transposition table, evaluator
// and opening book into a single handle usable by both the UCI front-end
// and the browser façade.
package engine

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"corvidchess/board"
	"corvidchess/book"
	"corvidchess/search"
	"corvidchess/tt"
)

// TableSizeNative and TableSizeBrowser are the two build-time transposition
// table sizes; the table is sized once at construction and never resized.
const (
	TableSizeNative  = 512 * 1024 * 1024
	TableSizeBrowser = 64 * 1024 * 1024
)

// Engine is the single stateful handle: one Board, one transposition table,
// one optional opening book, mutated in place. It is not safe for concurrent
// use, matching the single-threaded, synchronous core design.
type Engine struct {
	Board *board.Board
	table *tt.Table
	book  *book.Book
	stop  int32
	rnd   *rand.Rand

	// gameKeys is the Zobrist key of every position reached since the last
	// new_game, oldest first, feeding the searcher's repetition detection.
	gameKeys []uint64
}

// New builds an Engine with a table of the given byte size (use
// engine.TableSizeNative or engine.TableSizeBrowser, or any other power-of-
// two-rounded size the embedder wants).
func New(tableBytes int) *Engine {
	e := &Engine{
		Board: board.NewGame(),
		table: tt.New(tableBytes),
		rnd:   rand.New(rand.NewSource(1)),
	}
	e.gameKeys = append(e.gameKeys, e.Board.Key())
	log.Debug().Int("table_bytes", tableBytes).Msg("engine constructed")
	return e
}

// LoadBook installs a Polyglot book image. A load failure leaves the engine
// running without a book rather than failing the whole construction, per the
// error-handling design: book absence degrades search, it does not disable it.
func (e *Engine) LoadBook(data []byte) error {
	bk, err := book.Load(data)
	if err != nil {
		log.Warn().Err(err).Msg("opening book failed to load; continuing without it")
		return err
	}
	e.book = bk
	return nil
}

// NewGame resets the transposition table and the game history, keeping the
// (process-lifetime) attack tables and Zobrist constants untouched.
func (e *Engine) NewGame() {
	e.table.Clear()
	e.Board = board.NewGame()
	e.gameKeys = e.gameKeys[:0]
	e.gameKeys = append(e.gameKeys, e.Board.Key())
}

// SetPositionFEN replaces the board with the position described by fen. On
// a parse failure the engine's prior position is left untouched.
func (e *Engine) SetPositionFEN(fen string) bool {
	b, err := board.ParseFEN(fen)
	if err != nil {
		log.Debug().Err(err).Str("fen", fen).Msg("rejected FEN")
		return false
	}
	e.Board = b
	e.gameKeys = e.gameKeys[:0]
	e.gameKeys = append(e.gameKeys, e.Board.Key())
	return true
}

// SetPositionStartpos resets to the initial position and then applies each
// UCI move in moves in order; it stops (and returns false) at the first
// illegal move, leaving every move up to that point applied.
func (e *Engine) SetPositionStartpos(moves []string) bool {
	e.Board = board.NewGame()
	e.gameKeys = e.gameKeys[:0]
	e.gameKeys = append(e.gameKeys, e.Board.Key())
	for _, mv := range moves {
		if !e.ApplyMove(mv) {
			return false
		}
	}
	return true
}

// ApplyMove parses a UCI move string, checks it against the pseudo-legal
// move list for the exact from/to/flag triple, and applies it if legal.
func (e *Engine) ApplyMove(uci string) bool {
	m, ok := parseUCIMove(e.Board, uci)
	if !ok {
		return false
	}
	applied, _ := e.Board.Make(m)
	if !applied {
		return false
	}
	e.gameKeys = append(e.gameKeys, e.Board.Key())
	return true
}

// IsMoveLegal reports whether uci names a legal move without mutating the
// board (it probes a throwaway clone).
func (e *Engine) IsMoveLegal(uci string) bool {
	m, ok := parseUCIMove(e.Board, uci)
	if !ok {
		return false
	}
	clone := e.Board.Clone()
	ok, _ = clone.Make(m)
	return ok
}

// LegalMoves returns every legal move in the current position in UCI form.
func (e *Engine) LegalMoves() []string {
	legal := e.Board.GenerateLegal(make([]board.Move, 0, 64))
	out := make([]string, len(legal))
	for i, m := range legal {
		out[i] = m.String()
	}
	return out
}

// LegalMovesFromSquare filters LegalMoves down to those originating at sq
// (an algebraic square name such as "e2").
func (e *Engine) LegalMovesFromSquare(sq string) []string {
	from, ok := board.ParseSquareName(sq)
	if !ok {
		return nil
	}
	var out []string
	for _, m := range e.Board.GenerateLegal(make([]board.Move, 0, 64)) {
		if m.From() == from {
			out = append(out, m.String())
		}
	}
	return out
}

// GoResult is the façade-facing summary of a search invocation.
type GoResult struct {
	BestMove string
	Score    int
	Mate     bool
	MateIn   int
	FromBook bool
}

// GoDepth runs the book probe, falling back to a fixed-depth search.
func (e *Engine) GoDepth(depth int) GoResult {
	return e.go_(search.Limits{Depth: depth})
}

// GoMoveTime runs the book probe, falling back to a search bounded by ms
// milliseconds of wall-clock time.
func (e *Engine) GoMoveTime(ms int) GoResult {
	return e.go_(search.Limits{MoveTime: time.Duration(ms) * time.Millisecond})
}

// Go runs a search under full UCI time-control semantics, streaming
// onIteration callbacks for the protocol front-end's `info` lines.
func (e *Engine) Go(limits search.Limits, onIteration func(search.Result)) GoResult {
	if book, ok := e.probeBook(); ok {
		return book
	}
	search.ResetStop(&e.stop)
	res := search.Run(e.Board, e.table, e.gameKeys, limits, &e.stop, onIteration)
	return GoResult{BestMove: res.BestMove.String(), Score: res.Score, Mate: res.Mate, MateIn: res.MateIn}
}

func (e *Engine) go_(limits search.Limits) GoResult {
	return e.Go(limits, nil)
}

func (e *Engine) probeBook() (GoResult, bool) {
	if e.book == nil {
		return GoResult{}, false
	}
	m, ok := e.book.Probe(e.Board, e.rnd)
	if !ok {
		return GoResult{}, false
	}
	return GoResult{BestMove: m.String(), FromBook: true}, true
}

// Stop raises the cooperative cancellation flag for the in-flight search.
func (e *Engine) Stop() { search.RaiseStop(&e.stop) }

// FEN returns the current position in FEN form.
func (e *Engine) FEN() string { return e.Board.ToFEN() }

// Status reports the current game-terminal status.
func (e *Engine) Status() board.Status {
	return e.Board.Status(e.countRepetitions)
}

func (e *Engine) countRepetitions(key uint64) int {
	count := 0
	for _, k := range e.gameKeys {
		if k == key {
			count++
		}
	}
	return count
}

// SideToMove reports whose turn it is.
func (e *Engine) SideToMove() board.Color { return e.Board.SideToMove() }

// Command uci is the text protocol front-end: a thin line reader that
// dispatches to the engine's core entry points and formats their results the
// way a generic chess GUI expects.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"corvidchess/engine"
	"corvidchess/persist"
	"corvidchess/search"
)

const defaultBookPath = "book.bin"
const defaultStatsDir = "corvid-stats"
const startposFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	// Protocol traffic is stdout/fmt.Println by contract; diagnostics go to
	// stderr through zerolog so they never desync a GUI's line parser.
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	eng := engine.New(engine.TableSizeNative)
	if data, err := os.ReadFile(defaultBookPath); err == nil {
		if err := eng.LoadBook(data); err != nil {
			log.Warn().Err(err).Msg("book present but failed to load")
		}
	}

	stats, err := persist.Open(defaultStatsDir)
	if err != nil {
		log.Warn().Err(err).Msg("stats database unavailable; continuing without it")
		stats = nil
	} else {
		defer stats.Close()
	}

	uciLoop(eng, stats)
}

func uciLoop(eng *engine.Engine, stats *persist.Store) {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1024), 1<<20)

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Println("id name Corvid")
			fmt.Println("id author the corvidchess project")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			eng.NewGame()
			if stats != nil {
				if err := stats.RecordNewGame(); err != nil {
					log.Debug().Err(err).Msg("failed to record new game")
				}
			}
		case "quit":
			return
		case "stop":
			eng.Stop()
		case "position":
			handlePosition(eng, tokens[1:])
		case "go":
			handleGo(eng, tokens[1:], stats)
		default:
			fmt.Println("info string unknown command:", tokens[0])
		}
	}
}

func handlePosition(eng *engine.Engine, args []string) {
	if len(args) == 0 {
		fmt.Println("info string malformed position command")
		return
	}

	var movesIdx int
	var ok bool
	switch strings.ToLower(args[0]) {
	case "startpos":
		ok = eng.SetPositionFEN(startposFEN)
		movesIdx = 1
	case "fen":
		end := 1
		for end < len(args) && strings.ToLower(args[end]) != "moves" {
			end++
		}
		ok = eng.SetPositionFEN(strings.Join(args[1:end], " "))
		movesIdx = end
	default:
		fmt.Println("info string invalid position subcommand")
		return
	}
	if !ok {
		fmt.Println("info string invalid FEN")
		return
	}

	if movesIdx < len(args) && strings.ToLower(args[movesIdx]) == "moves" {
		for _, mv := range args[movesIdx+1:] {
			if !eng.ApplyMove(strings.ToLower(mv)) {
				fmt.Println("info string illegal move in position command:", mv)
				return
			}
		}
	}
}

func handleGo(eng *engine.Engine, args []string, stats *persist.Store) {
	limits := search.Limits{}
	for i := 0; i < len(args); i++ {
		switch strings.ToLower(args[i]) {
		case "infinite":
			limits.Infinite = true
		case "depth":
			i++
			limits.Depth = atoiOr(args, i, 0)
		case "movetime":
			i++
			limits.MoveTime = time.Duration(atoiOr(args, i, 0)) * time.Millisecond
		case "wtime":
			i++
			limits.WTime = time.Duration(atoiOr(args, i, 0)) * time.Millisecond
		case "btime":
			i++
			limits.BTime = time.Duration(atoiOr(args, i, 0)) * time.Millisecond
		case "winc":
			i++
			limits.WInc = time.Duration(atoiOr(args, i, 0)) * time.Millisecond
		case "binc":
			i++
			limits.BInc = time.Duration(atoiOr(args, i, 0)) * time.Millisecond
		case "movestogo":
			i++
			limits.MovesToGo = atoiOr(args, i, 0)
		}
	}

	var lastNodes uint64
	result := eng.Go(limits, func(r search.Result) {
		lastNodes = r.Nodes
		fmt.Printf("info depth %d score %s nodes %d time %d pv %s\n",
			r.Depth, scoreString(r), r.Nodes, r.ElapsedMs, pvString(r))
	})
	fmt.Println("bestmove", result.BestMove)

	if stats != nil {
		if err := stats.RecordSearch(lastNodes); err != nil {
			log.Debug().Err(err).Msg("failed to record search stats")
		}
	}
}

func scoreString(r search.Result) string {
	if r.Mate {
		return fmt.Sprintf("mate %d", r.MateIn)
	}
	return fmt.Sprintf("cp %d", r.Score)
}

func pvString(r search.Result) string {
	var sb strings.Builder
	for i, m := range r.PV {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}

func atoiOr(args []string, i, fallback int) int {
	if i < 0 || i >= len(args) {
		return fallback
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return fallback
	}
	return n
}

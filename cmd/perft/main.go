// Command perft is the move generator's correctness and speed harness: it
// counts (or divides, or profiles) the leaf nodes of the full move tree from
// a given position, for diffing against known reference node counts.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"corvidchess/board"
)

const startposFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	fen := flag.String("fen", startposFEN, "FEN string (defaults to the initial position)")
	depth := flag.Int("depth", 0, "perft depth (required, > 0)")
	divide := flag.Bool("divide", false, "break down the root's node counts by move")
	repeat := flag.Int("repeat", 1, "repeat the run this many times and report the aggregate")
	label := flag.String("label", "", "label attached to the summary line")
	cpuProf := flag.Bool("cpuprofile", false, "capture a CPU profile for the run")
	memProf := flag.Bool("memprofile", false, "capture a heap profile for the run")
	profPath := flag.String("profpath", ".", "directory to write profile output into")
	flag.Parse()

	if *depth <= 0 {
		log.Fatal().Int("depth", *depth).Msg("-depth must be greater than 0")
	}

	b, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Str("fen", *fen).Msg("could not parse FEN")
	}

	if *divide {
		printDivide(b, *depth)
		return
	}

	switch {
	case *cpuProf:
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profPath)).Stop()
	case *memProf:
		defer profile.Start(profile.MemProfile, profile.ProfilePath(*profPath)).Stop()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += board.Perft(b, *depth)
	}
	elapsed := time.Since(start)

	log.Info().
		Str("label", *label).
		Int("depth", *depth).
		Int("repeat", *repeat).
		Uint64("nodes", totalNodes).
		Dur("elapsed", elapsed).
		Float64("nodes_per_sec", float64(totalNodes)/elapsed.Seconds()).
		Msg("perft complete")
}

// printDivide lists every root move's leaf count, alphabetically by move, in
// an aligned table on stdout, followed by the grand total.
func printDivide(b *board.Board, depth int) {
	counts := board.PerftDivide(b, depth)

	moves := make([]board.Move, 0, len(counts))
	for m := range counts {
		moves = append(moves, m)
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	var total uint64
	for _, m := range moves {
		n := counts[m]
		total += n
		fmt.Fprintf(w, "%s\t%d\n", m.String(), n)
	}
	w.Flush()
	fmt.Printf("total\t%d\n", total)
}

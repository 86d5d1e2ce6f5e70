// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/elkjaer/corsair/pkg/board"
	"github.com/elkjaer/corsair/pkg/board/fen"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	pos, _, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen %q: %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := board.Perft(pos, i)
		duration := time.Since(start)

		if *divide && i == *depth {
			dividePerft(pos, i)
		}
		println(fmt.Sprintf("perft,%v,%v,%v,%v", *position, i, nodes, duration.Microseconds()))
	}
}

// dividePerft prints the node count contributed by each of the root's
// legal moves, a standard perft-debugging aid for isolating where a move
// generator disagrees with a reference count.
func dividePerft(pos *board.Position, depth int) {
	for _, m := range pos.LegalMoves() {
		undo := pos.Make(m)
		count := board.Perft(pos, depth-1)
		undo.Apply(pos)

		println(fmt.Sprintf("%v: %v", m, count))
	}
}

// corsair runs the core search engine against a single position and prints
// its chosen move. The interactive shell, the UCI protocol driver and time
// management are explicitly out of scope for this core -- this binary only
// exercises it end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/elkjaer/corsair/pkg/board/fen"
	"github.com/elkjaer/corsair/pkg/search"
	"github.com/seekerror/logw"
)

var (
	position = flag.String("fen", "", "Position to search (default to standard start)")
	depth    = flag.Int("depth", 6, "Fixed search depth")
	ttSize   = flag.Int("tt", 1<<20, "Transposition table size, in entries")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: corsair [options]

corsair searches one position to a fixed depth and prints the result.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *position == "" {
		*position = fen.Initial
	}

	pos, _, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen %q: %v", *position, err)
	}

	e := search.NewEngine(search.WithTableSize(*ttSize))

	start := time.Now()
	move, score, nodes, err := e.Search(ctx, pos, *depth)
	if err != nil {
		logw.Exitf(ctx, "Search failed: %v", err)
	}
	elapsed := time.Since(start)

	logw.Infof(ctx, "bestmove=%v score=%v nodes=%v depth=%v time=%v", move, score, nodes, *depth, elapsed)
}

package search

import (
	"context"
	"fmt"
	"time"

	"github.com/elkjaer/corsair/pkg/board"
	"github.com/elkjaer/corsair/pkg/eval"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"go.uber.org/atomic"
)

// PV is one completed iteration of iterative deepening: the depth searched,
// its score and best move, the number of nodes that depth's search visited
// and how long it took.
type PV struct {
	Depth int
	Move  board.Move
	Score eval.Score
	Nodes uint64
	Time  time.Duration
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%d move=%v score=%v nodes=%d time=%v", p.Depth, p.Move, p.Score, p.Nodes, p.Time)
}

// Handle lets a caller stop an in-flight SearchIterative call. Halt is
// idempotent and safe to call from any goroutine.
type Handle interface {
	Halt()
}

// SearchIterative runs Search at depth 1, 2, 3, ... emitting a PV on the
// returned channel after each completed depth, until maxDepth is reached
// (if set), the Handle is halted, or ctx is done. This is a convenience
// layered on top of the fixed-depth core Search -- actual time management
// is the surrounding shell's responsibility, not the engine's.
func (e *Engine) SearchIterative(ctx context.Context, pos *board.Position, maxDepth lang.Optional[int]) (Handle, <-chan PV) {
	out := make(chan PV, 1)
	h := &handle{done: atomic.NewBool(false)}

	go func() {
		defer close(out)

		for depth := 1; ; depth++ {
			if h.done.Load() || contextx.IsCancelled(ctx) {
				return
			}
			if limit, ok := maxDepth.V(); ok && depth > limit {
				return
			}

			// The table is cleared once, before depth 1, and then kept across
			// iterations (Search itself clears it on every call).
			if depth == 1 {
				e.TT.Clear()
			}

			start := time.Now()
			r := &run{pos: pos, eval: e.Eval, tt: e.TT}
			score := r.search(ctx, depth, eval.NegInf, eval.Inf, 0)

			select {
			case out <- PV{Depth: depth, Move: r.root, Score: score, Nodes: r.nodes, Time: time.Since(start)}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return h, out
}

type handle struct {
	done *atomic.Bool
}

func (h *handle) Halt() {
	h.done.Store(true)
}

// Package search implements negamax alpha-beta search over a board.Position,
// with quiescence, MVV-LVA move ordering and a Zobrist-keyed transposition
// table.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/elkjaer/corsair/pkg/board"
	"github.com/elkjaer/corsair/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// ErrCancelled is returned by Search if ctx is already cancelled at entry.
var ErrCancelled = errors.New("search: context cancelled")

const defaultTableSize = 1 << 16

// Engine is a root search session: an evaluator and a transposition table
// that, per design, persists across the iterative deepening of a single
// search but is cleared at the start of each independent Search call.
type Engine struct {
	Eval eval.Evaluator
	TT   *TranspositionTable
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithEvaluator overrides the default material evaluator.
func WithEvaluator(e eval.Evaluator) Option {
	return func(eng *Engine) {
		eng.Eval = e
	}
}

// WithTableSize overrides the transposition table size, in entries (rounded
// down to a power of two).
func WithTableSize(size int) Option {
	return func(eng *Engine) {
		eng.TT = NewTranspositionTable(size)
	}
}

// NewEngine returns an Engine with a material evaluator and a
// default-sized transposition table, adjusted by the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		Eval: eval.NewMaterial(),
		TT:   NewTranspositionTable(defaultTableSize),
	}
	for _, fn := range opts {
		fn(e)
	}
	return e
}

func (e *Engine) String() string {
	return fmt.Sprintf("Engine[%v]", e.TT)
}

// Search walks the game tree rooted at pos to the given depth and returns
// the best move found, its score from the side-to-move's perspective, and
// the number of nodes visited. pos is mutated and restored in place via
// Make/Undo; it is unchanged on return. If ctx is already done at entry,
// Search returns ErrCancelled. After that, ctx is polled before each move
// at every node (quiescence included); a cancellation stops the walk early
// and Search returns the best move and score found so far with a nil error.
func (e *Engine) Search(ctx context.Context, pos *board.Position, depth int) (board.Move, eval.Score, uint64, error) {
	if contextx.IsCancelled(ctx) {
		return board.Move{}, 0, 0, ErrCancelled
	}
	if depth < 1 {
		return board.Move{}, 0, 0, nil
	}

	e.TT.Clear()

	r := &run{pos: pos, eval: e.Eval, tt: e.TT}
	score := r.search(ctx, depth, eval.NegInf, eval.Inf, 0)
	return r.root, score, r.nodes, nil
}

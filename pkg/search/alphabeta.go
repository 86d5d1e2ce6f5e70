package search

import (
	"context"

	"github.com/elkjaer/corsair/pkg/board"
	"github.com/elkjaer/corsair/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// run carries the mutable state of one Search call: the position being
// walked in place, the node counter and the root's best move so far.
type run struct {
	pos  *board.Position
	eval eval.Evaluator
	tt   *TranspositionTable

	nodes uint64
	root  board.Move
}

// search implements the negamax/alpha-beta routine: probe the transposition
// table, drop into quiescence at the search horizon, detect mate/stalemate,
// order and walk the legal moves, and record the result.
func (r *run) search(ctx context.Context, depth int, alpha, beta eval.Score, ply int) eval.Score {
	r.nodes++

	if ply > 0 {
		if d, score, _, ok := r.tt.Probe(r.pos.Hash()); ok && d >= depth {
			return score
		}
	}

	if depth == 0 {
		return r.quiescence(ctx, alpha, beta)
	}

	moves := r.pos.LegalMoves()
	if len(moves) == 0 {
		if r.pos.IsChecked(r.pos.SideToMove()) {
			return -(eval.MateMagnitude - eval.Score(ply))
		}
		return 0
	}

	_, _, best, _ := r.tt.Probe(r.pos.Hash())
	list := NewMoveList(moves, First(r.pos, best))

	var local board.Move
	for {
		m, ok := list.Next()
		if !ok {
			break
		}
		if contextx.IsCancelled(ctx) {
			break
		}

		undo := r.pos.Make(m)
		score := -r.search(ctx, depth-1, -beta, -alpha, ply+1)
		undo.Apply(r.pos)

		if score >= beta {
			r.tt.Store(r.pos.Hash(), depth, beta, m)
			return beta
		}
		if score > alpha {
			alpha = score
			local = m
			if ply == 0 {
				r.root = m
			}
		}
	}

	r.tt.Store(r.pos.Hash(), depth, alpha, local)
	return alpha
}

// quiescence extends search along capture-only lines until the position is
// quiet, returning the static evaluation when no captures remain. Per
// design, there is deliberately no stand-pat cutoff here: every capture is
// explored even when the side to move would already prefer to stop.
func (r *run) quiescence(ctx context.Context, alpha, beta eval.Score) eval.Score {
	r.nodes++

	captures := r.pos.LegalCaptureMoves()
	if len(captures) == 0 {
		return r.eval.Evaluate(r.pos)
	}

	list := NewMoveList(captures, func(m board.Move) Priority { return MVVLVA(r.pos, m) })
	for {
		m, ok := list.Next()
		if !ok {
			break
		}
		if contextx.IsCancelled(ctx) {
			break
		}

		undo := r.pos.Make(m)
		score := -r.quiescence(ctx, -beta, -alpha)
		undo.Apply(r.pos)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

package search

import (
	"container/heap"
	"fmt"

	"github.com/elkjaer/corsair/pkg/board"
	"github.com/elkjaer/corsair/pkg/eval"
)

// Priority is the move ordering priority: higher values are explored first.
type Priority int32

// MoveList is a move priority queue used to order candidates before
// alpha-beta descends into them.
type MoveList struct {
	h moveHeap
}

// NewMoveList builds a move list ordered by fn, highest priority first.
func NewMoveList(moves []board.Move, fn func(board.Move) Priority) *MoveList {
	h := make(moveHeap, len(moves))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m)}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next pops the highest-priority remaining move.
func (ml *MoveList) Next() (board.Move, bool) {
	if ml.h.Len() == 0 {
		return board.Move{}, false
	}
	return heap.Pop(&ml.h).(elm).m, true
}

func (ml *MoveList) String() string {
	if ml.h.Len() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.h.Len())
}

type elm struct {
	m   board.Move
	val Priority
}

type moveHeap []elm

func (h moveHeap) Len() int            { return len(h) }
func (h moveHeap) Less(i, j int) bool  { return h[i].val > h[j].val }
func (h moveHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *moveHeap) Push(x interface{}) { *h = append(*h, x.(elm)) }
func (h *moveHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// MVVLVA scores a move by "most valuable victim, least valuable attacker":
// a capture scores victim value minus attacker value and moves are explored
// highest score first; quiet moves score 0, so a capture whose attacker is
// worth more than its victim is explored after them. pos is the position
// the move is pseudo-legal in.
func MVVLVA(pos *board.Position, m board.Move) Priority {
	victim := captureValue(pos, m)
	if victim == 0 {
		return 0
	}
	attacker := eval.NominalValue(pos.Piece(m.From).Kind)
	return Priority(victim - attacker)
}

// captureValue is the nominal value gained by playing m: the captured
// piece's value (including a promotion's own gain), or zero for a quiet move.
func captureValue(pos *board.Position, m board.Move) eval.Score {
	var gain eval.Score

	target := pos.Piece(m.To)
	if !target.IsEmpty() {
		gain += eval.NominalValue(target.Kind)
	} else if mover := pos.Piece(m.From); mover.Kind == board.Pawn {
		if ep, ok := pos.EnPassant(); ok && m.To == ep {
			gain += eval.NominalValue(board.Pawn)
		}
	}

	if m.Promotion != board.Empty {
		gain += eval.NominalValue(m.Promotion) - eval.NominalValue(board.Pawn)
	}
	return gain
}

// First puts a single preferred move (e.g. the TT best move) ahead of
// everything else, falling back to MVVLVA for the rest.
func First(pos *board.Position, preferred board.Move) func(board.Move) Priority {
	return func(m board.Move) Priority {
		if !preferred.IsZero() && m.Equals(preferred) {
			return 1 << 20
		}
		return MVVLVA(pos, m)
	}
}

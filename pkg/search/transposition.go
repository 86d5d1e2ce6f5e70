package search

import (
	"fmt"
	"math/bits"

	"github.com/elkjaer/corsair/pkg/board"
	"github.com/elkjaer/corsair/pkg/eval"
	"go.uber.org/atomic"
)

// entry is one transposition table slot: the depth the position was
// searched to and the score that search returned for the side to move at
// that node, plus the move that produced it.
//
// The table stores this score as if it were exact. It is not: under
// alpha-beta a returned value is only a bound relative to the window the
// search was called with. This is the literal baseline behavior -- it does
// not miscompute perft or the mate tests in this repo's suite, but it can
// misguide a deeper search for a position revisited through a narrower
// window. A sound table would tag each entry {exact, lower, upper} and
// only honor a probe when the window allows it.
type entry struct {
	hash  board.ZobristHash
	depth int
	score eval.Score
	move  board.Move
	used  bool
}

// TranspositionTable maps position hashes to the depth and score of the
// most recent search of that position. Replacement policy is always-replace.
// Probe and Store are not synchronized and expect a single search goroutine;
// only the used-entry counter is atomic, so String may be called from
// another goroutine (e.g. a status reporter) while a search runs.
type TranspositionTable struct {
	slots []entry
	mask  uint64
	used  atomic.Uint64
}

// NewTranspositionTable allocates a table with at most size entries: size
// rounded down to the nearest power of two (minimum 1).
func NewTranspositionTable(size int) *TranspositionTable {
	if size < 1 {
		size = 1
	}
	n := 1 << (63 - bits.LeadingZeros64(uint64(size)))
	return &TranspositionTable{
		slots: make([]entry, n),
		mask:  uint64(n) - 1,
	}
}

// Probe returns the stored depth, score and best move for hash, if present.
func (t *TranspositionTable) Probe(hash board.ZobristHash) (depth int, score eval.Score, move board.Move, ok bool) {
	e := &t.slots[uint64(hash)&t.mask]
	if !e.used || e.hash != hash {
		return 0, 0, board.Move{}, false
	}
	return e.depth, e.score, e.move, true
}

// Store records a search result, unconditionally overwriting whatever
// previously occupied the slot.
func (t *TranspositionTable) Store(hash board.ZobristHash, depth int, score eval.Score, move board.Move) {
	e := &t.slots[uint64(hash)&t.mask]
	if !e.used {
		t.used.Inc()
	}
	*e = entry{hash: hash, depth: depth, score: score, move: move, used: true}
}

// Clear empties the table. Per design, the table is cleared between
// game-independent search roots but persists across the iterative
// deepening of a single search.
func (t *TranspositionTable) Clear() {
	for i := range t.slots {
		t.slots[i] = entry{}
	}
	t.used.Store(0)
}

func (t *TranspositionTable) String() string {
	return fmt.Sprintf("TT[%d entries, %d used]", len(t.slots), t.used.Load())
}

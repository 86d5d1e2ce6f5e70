package search_test

import (
	"math/rand"
	"testing"

	"github.com/elkjaer/corsair/pkg/board"
	"github.com/elkjaer/corsair/pkg/eval"
	"github.com/elkjaer/corsair/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestTranspositionTableSizeRoundsDownToPowerOfTwo(t *testing.T) {
	tt := search.NewTranspositionTable(0x1000)
	assert.Equal(t, "TT[4096 entries, 0 used]", tt.String())

	tt2 := search.NewTranspositionTable(0x1f00)
	assert.Equal(t, "TT[4096 entries, 0 used]", tt2.String())
}

func TestTranspositionTableReadWrite(t *testing.T) {
	tt := search.NewTranspositionTable(0x1000)

	hash := board.ZobristHash(rand.Uint64())

	_, _, _, ok := tt.Probe(hash)
	assert.False(t, ok)

	m := board.Move{From: board.G4, To: board.G8, Promotion: board.Queen}
	tt.Store(hash, 2, eval.Score(2), m)

	depth, score, move, ok := tt.Probe(hash)
	assert.True(t, ok)
	assert.Equal(t, 2, depth)
	assert.Equal(t, eval.Score(2), score)
	assert.Equal(t, m, move)

	_, _, _, ok = tt.Probe(hash ^ 0xff0000)
	assert.False(t, ok)
}

func TestTranspositionTableAlwaysReplaces(t *testing.T) {
	tt := search.NewTranspositionTable(0x100)
	hash := board.ZobristHash(0x42)

	tt.Store(hash, 5, eval.Score(10), board.Move{})
	tt.Store(hash, 1, eval.Score(-3), board.Move{})

	depth, score, _, ok := tt.Probe(hash)
	assert.True(t, ok)
	assert.Equal(t, 1, depth)
	assert.Equal(t, eval.Score(-3), score)
}

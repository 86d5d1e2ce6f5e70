package eval_test

import (
	"testing"

	"github.com/elkjaer/corsair/pkg/board"
	"github.com/elkjaer/corsair/pkg/board/fen"
	"github.com/elkjaer/corsair/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialStartingPositionIsBalanced(t *testing.T) {
	pos, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	e := eval.NewMaterial()
	assert.Equal(t, eval.Score(0), e.Evaluate(pos))
}

func TestMaterialFavorsExtraQueen(t *testing.T) {
	pos, _, err := fen.Decode("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	require.NoError(t, err)

	e := eval.NewMaterial()
	assert.Equal(t, eval.Score(9), e.Evaluate(pos))
}

func TestMaterialIsNegatedForBlackToMove(t *testing.T) {
	white, _, err := fen.Decode("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	require.NoError(t, err)
	black, _, err := fen.Decode("4k3/8/8/8/8/8/8/4KQ2 b - - 0 1")
	require.NoError(t, err)

	e := eval.NewMaterial()
	assert.Equal(t, e.Evaluate(white), -e.Evaluate(black))
}

func TestNominalValueOrderingUsesHeavyKing(t *testing.T) {
	assert.Equal(t, eval.Score(100), eval.NominalValue(board.King))
}

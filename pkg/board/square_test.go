package board_test

import (
	"testing"

	"github.com/elkjaer/corsair/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareConstants(t *testing.T) {
	assert.Equal(t, board.Square(0), board.A8)
	assert.Equal(t, board.Square(63), board.H1)
	assert.Equal(t, board.Square(4), board.E8)
}

func TestNewSquare(t *testing.T) {
	assert.Equal(t, board.A8, board.NewSquare(0, 0))
	assert.Equal(t, board.H1, board.NewSquare(7, 7))
	assert.Equal(t, board.E4, board.NewSquare(4, 4))
}

func TestSquareFileAndRank(t *testing.T) {
	assert.Equal(t, 0, board.A8.File())
	assert.Equal(t, 8, board.A8.Rank())
	assert.Equal(t, 7, board.H1.File())
	assert.Equal(t, 1, board.H1.Rank())
	assert.Equal(t, 4, board.E4.File())
	assert.Equal(t, 4, board.E4.Rank())
}

func TestSquareIsValid(t *testing.T) {
	assert.True(t, board.A1.IsValid())
	assert.True(t, board.H8.IsValid())
	assert.False(t, board.NoSquare.IsValid())
}

func TestParseSquare(t *testing.T) {
	sq, err := board.ParseSquare("e4")
	require.NoError(t, err)
	assert.Equal(t, board.E4, sq)

	sq, err = board.ParseSquare("a8")
	require.NoError(t, err)
	assert.Equal(t, board.A8, sq)

	_, err = board.ParseSquare("i9")
	assert.Error(t, err)

	_, err = board.ParseSquare("e")
	assert.Error(t, err)
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "a8", board.A8.String())
	assert.Equal(t, "h1", board.H1.String())
	assert.Equal(t, "e4", board.E4.String())
	assert.Equal(t, "-", board.NoSquare.String())
}

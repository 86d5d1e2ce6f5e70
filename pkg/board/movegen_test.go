package board_test

import (
	"testing"

	"github.com/elkjaer/corsair/pkg/board"
	"github.com/elkjaer/corsair/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hasMove(moves []board.Move, from, to board.Square) bool {
	for _, m := range moves {
		if m.From == from && m.To == to {
			return true
		}
	}
	return false
}

func TestPromotionEmitsFourVariants(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: board.D7, Piece: board.Piece{Kind: board.Pawn, Color: board.White}},
	}, board.White, 0, board.NoSquare, 1)
	require.NoError(t, err)

	var count int
	kinds := map[board.Kind]bool{}
	for _, m := range pos.PseudoLegalMoves() {
		if m.From == board.D7 && m.To == board.D8 {
			count++
			kinds[m.Promotion] = true
		}
	}

	assert.Equal(t, 4, count)
	assert.True(t, kinds[board.Queen])
	assert.True(t, kinds[board.Rook])
	assert.True(t, kinds[board.Bishop])
	assert.True(t, kinds[board.Knight])
}

func TestEnPassantOnlyImmediatelyAfterDoublePush(t *testing.T) {
	pos, _, err := fen.Decode("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)

	assert.True(t, hasMove(pos.PseudoLegalMoves(), board.E5, board.D6))

	// Once the ep target is gone (no double push just played), the same
	// capture diagonal is not offered.
	pos2, _, err := fen.Decode("4k3/8/8/3pP3/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, hasMove(pos2.PseudoLegalMoves(), board.E5, board.D6))
}

func TestCastlingThroughCheckIsIllegal(t *testing.T) {
	// Black rook on d2 attacks d1, the square the king crosses when castling
	// queenside, while e1 itself is not attacked -- castling must not be
	// offered.
	pos, _, err := fen.Decode("4k3/8/8/8/8/8/3r4/R3K3 w Q - 0 1")
	require.NoError(t, err)

	assert.False(t, hasMove(pos.LegalMoves(), board.E1, board.C1))
}

func TestCastlingOutOfCheckIsIllegal(t *testing.T) {
	pos, _, err := fen.Decode("4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	legal := pos.LegalMoves()
	assert.False(t, hasMove(legal, board.E1, board.G1))
	assert.False(t, hasMove(legal, board.E1, board.C1))
}

func TestCastlingAvailableWhenClear(t *testing.T) {
	pos, _, err := fen.Decode("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	legal := pos.LegalMoves()
	assert.True(t, hasMove(legal, board.E1, board.G1))
	assert.True(t, hasMove(legal, board.E1, board.C1))
}

func TestLegalMovesNeverLeaveKingInCheck(t *testing.T) {
	checked, _, err := fen.Decode("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.NoError(t, err)
	for _, m := range checked.LegalMoves() {
		undo := checked.Make(m)
		assert.False(t, checked.IsChecked(board.White))
		undo.Apply(checked)
	}
}

// TestCheckPredicateFileAndRank exercises IsSquareAttacked for a rook: it
// attacks every empty square along its own file and rank up to the first
// blocker, and nothing off those lines.
func TestCheckPredicateFileAndRank(t *testing.T) {
	pos, _, err := fen.Decode("4k3/8/8/8/8/8/r7/4K3 w - - 0 1")
	require.NoError(t, err)

	// Down the a-file to a1.
	assert.True(t, pos.IsSquareAttacked(board.A1, board.White))
	// Along rank 2.
	assert.True(t, pos.IsSquareAttacked(board.H2, board.White))
	// Off both lines: not attacked by this rook.
	assert.False(t, pos.IsSquareAttacked(board.H1, board.White))
}

func TestPawnCapturesRespectFileEdges(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: board.A2, Piece: board.Piece{Kind: board.Pawn, Color: board.White}},
		{Square: board.B3, Piece: board.Piece{Kind: board.Pawn, Color: board.Black}},
	}, board.White, 0, board.NoSquare, 1)
	require.NoError(t, err)

	moves := pos.PseudoLegalMoves()
	assert.True(t, hasMove(moves, board.A2, board.B3))
}

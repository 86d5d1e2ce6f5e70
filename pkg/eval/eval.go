package eval

import "github.com/elkjaer/corsair/pkg/board"

// Evaluator is a static position evaluator.
type Evaluator interface {
	// Evaluate returns the position score in pawn units, from the
	// perspective of the side to move.
	Evaluate(pos *board.Position) Score
}

// Material is a material-plus-piece-square evaluator: it sums, over every
// piece on the board, the piece's material value weighted by a per-square
// table, signed for White and mirrored/negated for Black, then orients the
// total to the side to move.
type Material struct {
	Tables PieceSquareTables
}

// NewMaterial returns a Material evaluator using the identity piece-square
// tables (no positional weighting beyond material count).
func NewMaterial() Material {
	return Material{Tables: IdentityTables()}
}

func (m Material) Evaluate(pos *board.Position) Score {
	var total Score

	for sq := board.Square(0); sq < board.NumSquares; sq++ {
		piece := pos.Piece(sq)
		if piece.IsEmpty() {
			continue
		}

		value := materialValue(piece.Kind)
		switch piece.Color {
		case board.White:
			total += value * Score(m.Tables[piece.Kind][sq])
		case board.Black:
			total -= value * Score(m.Tables[piece.Kind][mirror(sq)])
		}
	}

	if pos.SideToMove() == board.Black {
		total = -total
	}
	return total
}

// materialValue is the evaluator's piece value table: P=1, N=3, B=3, R=5,
// Q=9, K=0 (the king contributes no material score; its safety is outside
// this baseline evaluator).
func materialValue(k board.Kind) Score {
	switch k {
	case board.Pawn:
		return 1
	case board.Knight, board.Bishop:
		return 3
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	default:
		return 0
	}
}

// NominalValue is the move-ordering piece value table: P=1, N=B=3, R=5, Q=9,
// K=100. It differs from materialValue only in the king's weight, which
// matters for MVV-LVA ordering of check-evasion captures but must never
// leak into the static material balance.
func NominalValue(k board.Kind) Score {
	if k == board.King {
		return 100
	}
	return materialValue(k)
}

// mirror flips a square vertically (rank 8 <-> rank 1), turning White's
// table orientation into Black's.
func mirror(sq board.Square) board.Square {
	return board.NewSquare(sq.File(), sq.Rank()-1)
}

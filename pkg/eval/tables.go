package eval

import "github.com/elkjaer/corsair/pkg/board"

// PieceSquareTables holds one 64-entry weight table per piece kind, indexed
// by board.Square in White's own orientation. Black's contribution is
// looked up through the mirrored square (see mirror in eval.go) so a single
// table set serves both colors.
type PieceSquareTables [board.King + 1][board.NumSquares]int

// IdentityTables returns a table set that weighs every square equally,
// reducing Material to plain piece counting. A reasonable baseline per the
// design: positional weighting can be layered on without touching the
// evaluator's structure.
func IdentityTables() PieceSquareTables {
	var t PieceSquareTables
	for k := range t {
		for sq := range t[k] {
			t[k][sq] = 1
		}
	}
	return t
}

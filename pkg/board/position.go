package board

import (
	"fmt"
	"strings"
)

// Placement places one piece on one square; used to build a Position.
type Placement struct {
	Square Square
	Piece  Piece
}

// Position is the mutable state of a chess game suitable for move
// generation and search: piece placement, side to move, castling rights,
// en-passant target, cached king squares, full-move counter and the current
// Zobrist hash. A Position carries no move history -- it is constructed
// fresh from a FEN-derived Placement list and mutated only through
// Make/Undo, which follow strict stack discipline (see makeundo.go).
type Position struct {
	squares    [NumSquares]Piece
	sideToMove Color
	castling   Castling
	epTarget   Square
	fullmoves  int
	kingSquare [NumColors]Square
	hash       ZobristHash

	rays *Rays
	zob  *ZobristTable
}

// NewPosition builds a position from an explicit piece list. ep is NoSquare
// if there is no en-passant target. fullmoves is the FEN full-move counter.
// It is a programmer error (not a parse error) to hand this duplicate
// placements or more than one king per color; NewPosition reports that with
// an error since it is cheap to check once at construction.
func NewPosition(placements []Placement, turn Color, castling Castling, ep Square, fullmoves int) (*Position, error) {
	p := &Position{
		sideToMove: turn,
		castling:   castling,
		epTarget:   ep,
		fullmoves:  fullmoves,
		kingSquare: [NumColors]Square{NoSquare, NoSquare},
		rays:       DefaultRays,
		zob:        DefaultZobrist,
	}

	seen := make(map[Square]bool, len(placements))
	for _, pl := range placements {
		if seen[pl.Square] {
			return nil, fmt.Errorf("duplicate placement on %v", pl.Square)
		}
		seen[pl.Square] = true

		if pl.Piece.Kind == King {
			if p.kingSquare[pl.Piece.Color] != NoSquare {
				return nil, fmt.Errorf("more than one %v king", pl.Piece.Color)
			}
			p.kingSquare[pl.Piece.Color] = pl.Square
		}
		p.squares[pl.Square] = pl.Piece
	}

	p.hash = p.zob.Hash(p.squares, p.sideToMove, p.castling, p.epTarget)
	return p, nil
}

// Piece returns the piece on sq, or the zero-value NoPiece if empty.
func (p *Position) Piece(sq Square) Piece {
	return p.squares[sq]
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// Castling returns the current castling rights.
func (p *Position) Castling() Castling {
	return p.castling
}

// EnPassant returns the en-passant target square and whether one is set.
func (p *Position) EnPassant() (Square, bool) {
	return p.epTarget, p.epTarget != NoSquare
}

// KingSquare returns the square of c's king, or NoSquare if absent.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// Fullmoves returns the full-move counter.
func (p *Position) Fullmoves() int {
	return p.fullmoves
}

// Hash returns the current Zobrist hash.
func (p *Position) Hash() ZobristHash {
	return p.hash
}

// Rehash recomputes the Zobrist hash from scratch. Used by tests to detect
// incremental-hash drift; the core never needs to call this in normal
// operation.
func (p *Position) Rehash() ZobristHash {
	return p.zob.Hash(p.squares, p.sideToMove, p.castling, p.epTarget)
}

// IsChecked reports whether c's king is currently attacked. False if c has
// no king on the board.
func (p *Position) IsChecked(c Color) bool {
	sq := p.kingSquare[c]
	if sq == NoSquare {
		return false
	}
	return p.IsSquareAttacked(sq, c)
}

func (p *Position) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		blanks := 0
		for file := 0; file < 8; file++ {
			piece := p.squares[NewSquare(file, row)]
			if piece.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				fmt.Fprintf(&sb, "%d", blanks)
				blanks = 0
			}
			sb.WriteString(piece.String())
		}
		if blanks > 0 {
			fmt.Fprintf(&sb, "%d", blanks)
		}
	}

	ep := "-"
	if sq, ok := p.EnPassant(); ok {
		ep = sq.String()
	}
	return fmt.Sprintf("%v %v %v %v", sb.String(), p.sideToMove, p.castling, ep)
}

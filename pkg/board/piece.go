package board

import "strings"

// Kind represents a chess piece type without color.
type Kind uint8

const (
	Empty Kind = iota
	Pawn
	Bishop
	Knight
	Rook
	Queen
	King
)

// IsValid reports whether k is an actual piece kind (not Empty).
func (k Kind) IsValid() bool {
	return Pawn <= k && k <= King
}

func (k Kind) String() string {
	switch k {
	case Empty:
		return "."
	case Pawn:
		return "p"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// ParseKind parses a single piece letter, case-insensitive.
func ParseKind(r rune) (Kind, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return Empty, false
	}
}

// Color is one of the two playing sides.
type Color uint8

const (
	White Color = iota
	Black
)

// NumColors is the number of colors.
const NumColors = 2

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// Piece is a (Kind, Color) pair. The zero value is an empty square: Empty
// kind with White color, by convention -- callers must gate on IsEmpty
// before reading Color, since an empty square's color is never meaningful.
type Piece struct {
	Kind  Kind
	Color Color
}

// NoPiece is the empty-square value.
var NoPiece = Piece{Kind: Empty, Color: White}

// IsEmpty reports whether the square this piece came from holds nothing.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	if p.Color == White {
		return strings.ToUpper(p.Kind.String())
	}
	return p.Kind.String()
}

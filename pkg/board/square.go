// Package board contains the chess board representation: squares, pieces,
// moves, the position with make/unmake, move generation and the check
// predicate.
package board

import "fmt"

// Square identifies one of the 64 board squares. Square 0 is a8; the index
// runs file-major across each rank, a8..h8 then a7..h7 and so on down to
// a1..h1, so square 63 is h1.
type Square uint8

const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// NoSquare is the sentinel "none" value used for an absent en-passant
// target or an absent king square.
const NoSquare Square = 64

// NumSquares is the number of squares on the board.
const NumSquares = 64

// NewSquare builds a square from a zero-based file (0=a..7=h) and a
// zero-based row index from the top of the board (0=rank8..7=rank1).
func NewSquare(file, row int) Square {
	return Square(row*8 + file)
}

// File returns the zero-based file, 0 (a) through 7 (h).
func (s Square) File() int {
	return int(s) % 8
}

// row returns the zero-based row from the top of the board: rank 8 is row 0,
// rank 1 is row 7. This is the "rank" used by the geometry table formulas.
func (s Square) row() int {
	return int(s) / 8
}

// Rank returns the chess rank number, 1 through 8.
func (s Square) Rank() int {
	return 8 - s.row()
}

// IsValid reports whether s is one of the 64 real squares (excludes NoSquare).
func (s Square) IsValid() bool {
	return s < NumSquares
}

// ParseSquare parses algebraic square notation such as "e4".
func ParseSquare(str string) (Square, error) {
	if len(str) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", str)
	}
	f, r := str[0], str[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return NoSquare, fmt.Errorf("invalid square: %q", str)
	}
	return NewSquare(int(f-'a'), 8-int(r-'0')), nil
}

func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+byte(s.File()), s.Rank())
}

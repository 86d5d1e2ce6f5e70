// Package fen reads and writes chess positions in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/elkjaer/corsair/pkg/board"
)

// Initial is the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN record into a Position plus the halfmove clock. The
// core ignores the halfmove clock per spec (no fifty-move adjudication in
// Position), but Decode still returns it for callers that want to layer
// draw adjudication on top.
func Decode(record string) (pos *board.Position, halfmoveClock int, err error) {
	fields := strings.Fields(record)
	if len(fields) != 6 {
		return nil, 0, fmt.Errorf("invalid FEN %q: expected 6 fields, got %d", record, len(fields))
	}

	placements, err := decodePlacement(fields[0])
	if err != nil {
		return nil, 0, fmt.Errorf("invalid FEN %q: %v", record, err)
	}

	turn, ok := decodeColor(fields[1])
	if !ok {
		return nil, 0, fmt.Errorf("invalid FEN %q: bad active color %q", record, fields[1])
	}

	castling, ok := decodeCastling(fields[2])
	if !ok {
		return nil, 0, fmt.Errorf("invalid FEN %q: bad castling field %q", record, fields[2])
	}

	ep := board.NoSquare
	if fields[3] != "-" {
		ep, err = board.ParseSquare(fields[3])
		if err != nil {
			return nil, 0, fmt.Errorf("invalid FEN %q: bad en passant field: %v", record, err)
		}
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, 0, fmt.Errorf("invalid FEN %q: bad halfmove clock %q", record, fields[4])
	}

	fullmoves, err := strconv.Atoi(fields[5])
	if err != nil || fullmoves < 0 {
		return nil, 0, fmt.Errorf("invalid FEN %q: bad fullmove counter %q", record, fields[5])
	}

	pos, err = board.NewPosition(placements, turn, castling, ep, fullmoves)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid FEN %q: %v", record, err)
	}
	return pos, halfmove, nil
}

// Encode renders a position, side to move's turn already being part of pos,
// plus the halfmove clock, back into FEN.
func Encode(pos *board.Position, halfmoveClock int) string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		blanks := 0
		for file := 0; file < 8; file++ {
			piece := pos.Piece(board.NewSquare(file, row))
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
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), pos.SideToMove(), pos.Castling(), ep, halfmoveClock, pos.Fullmoves())
}

func decodePlacement(field string) ([]board.Placement, error) {
	var placements []board.Placement

	rows := strings.Split(field, "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("expected 8 ranks, got %d", len(rows))
	}

	for row, rank := range rows {
		file := 0
		for _, r := range rank {
			switch {
			case r >= '1' && r <= '8':
				file += int(r - '0')
			default:
				color := board.White
				k := r
				if r >= 'a' && r <= 'z' {
					color = board.Black
					k = r - ('a' - 'A')
				}
				kind, ok := board.ParseKind(k)
				if !ok {
					return nil, fmt.Errorf("invalid piece %q", r)
				}
				if file > 7 {
					return nil, fmt.Errorf("rank %d overflows 8 files", 8-row)
				}
				placements = append(placements, board.Placement{
					Square: board.NewSquare(file, row),
					Piece:  board.Piece{Kind: kind, Color: color},
				})
				file++
			}
		}
		if file != 8 {
			return nil, fmt.Errorf("rank %d has %d files, want 8", 8-row, file)
		}
	}
	return placements, nil
}

func decodeColor(field string) (board.Color, bool) {
	switch field {
	case "w":
		return board.White, true
	case "b":
		return board.Black, true
	default:
		return 0, false
	}
}

func decodeCastling(field string) (board.Castling, bool) {
	if field == "-" {
		return 0, true
	}
	var c board.Castling
	for _, r := range field {
		switch r {
		case 'K':
			c |= board.WhiteKingside
		case 'Q':
			c |= board.WhiteQueenside
		case 'k':
			c |= board.BlackKingside
		case 'q':
			c |= board.BlackQueenside
		default:
			return 0, false
		}
	}
	return c, true
}

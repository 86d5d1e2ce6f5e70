package board

// promotionKinds are the four pieces a pawn may promote to, in the order
// moves are emitted.
var promotionKinds = [4]Kind{Queen, Rook, Bishop, Knight}

// PseudoLegalMoves generates every pseudo-legal move for the side to move:
// piece-movement rules without regard to whether the move leaves the
// mover's own king in check. Use LegalMoves for a check-filtered list.
func (p *Position) PseudoLegalMoves() []Move {
	var moves []Move
	turn := p.sideToMove

	for sq := Square(0); sq < NumSquares; sq++ {
		piece := p.squares[sq]
		if piece.IsEmpty() || piece.Color != turn {
			continue
		}
		switch piece.Kind {
		case Pawn:
			p.genPawnMoves(sq, turn, &moves)
		case Knight:
			p.genOffsetMoves(sq, turn, knightOffsets[:], &moves)
		case King:
			p.genOffsetMoves(sq, turn, kingOffsets[:], &moves)
		case Bishop:
			p.genSlidingMoves(sq, turn, diagonals[:], &moves)
		case Rook:
			p.genSlidingMoves(sq, turn, cardinals[:], &moves)
		case Queen:
			p.genSlidingMoves(sq, turn, allEight[:], &moves)
		}
	}
	p.genCastlingMoves(turn, &moves)
	return moves
}

func (p *Position) genPawnMoves(sq Square, turn Color, moves *[]Move) {
	forward := North
	startRow, promoRow := 6, 0
	if turn == Black {
		forward = South
		startRow, promoRow = 1, 7
	}

	emit := func(to Square) {
		if to.row() == promoRow {
			for _, k := range promotionKinds {
				*moves = append(*moves, Move{From: sq, To: to, Promotion: k})
			}
			return
		}
		*moves = append(*moves, Move{From: sq, To: to})
	}

	// Quiet pushes.
	if one, ok := step(sq, forward); ok && p.squares[one].IsEmpty() {
		emit(one)
		if sq.row() == startRow {
			if two, ok := step(one, forward); ok && p.squares[two].IsEmpty() {
				emit(two)
			}
		}
	}

	// Captures, including en passant.
	for _, diag := range [2]Direction{addDir(forward, East), addDir(forward, West)} {
		to, ok := step(sq, diag)
		if !ok {
			continue
		}
		target := p.squares[to]
		if (!target.IsEmpty() && target.Color != turn) || to == p.epTarget {
			emit(to)
		}
	}
}

// addDir composes a forward direction with a sideways direction, e.g. a
// white pawn's capture diagonals are North+East and North+West.
func addDir(a, b Direction) Direction {
	return Direction{df: a.df + b.df, dr: a.dr + b.dr}
}

func (p *Position) genOffsetMoves(sq Square, turn Color, offsets [][2]int, moves *[]Move) {
	for _, o := range offsets {
		to, ok := step(sq, Direction{df: o[0], dr: o[1]})
		if !ok {
			continue
		}
		target := p.squares[to]
		if target.IsEmpty() || target.Color != turn {
			*moves = append(*moves, Move{From: sq, To: to})
		}
	}
}

func (p *Position) genSlidingMoves(sq Square, turn Color, dirs []Direction, moves *[]Move) {
	for _, d := range dirs {
		n := p.rays.Len(sq, d)
		cur := sq
		for i := 0; i < n; i++ {
			next, ok := step(cur, d)
			if !ok {
				break
			}
			target := p.squares[next]
			if target.IsEmpty() {
				*moves = append(*moves, Move{From: sq, To: next})
				cur = next
				continue
			}
			if target.Color != turn {
				*moves = append(*moves, Move{From: sq, To: next})
			}
			break // blocked, stop walking the ray either way
		}
	}
}

func (p *Position) genCastlingMoves(turn Color, moves *[]Move) {
	kingHome := E1
	if turn == Black {
		kingHome = E8
	}
	if p.kingSquare[turn] != kingHome {
		return
	}

	rook := Piece{Kind: Rook, Color: turn}

	if p.castling.Has(kingsideRight(turn)) {
		f, g, h := kingHome+1, kingHome+2, kingHome+3
		if p.squares[f].IsEmpty() && p.squares[g].IsEmpty() && p.squares[h] == rook {
			if !p.IsSquareAttacked(kingHome, turn) && !p.IsSquareAttacked(f, turn) {
				*moves = append(*moves, Move{From: kingHome, To: g})
			}
		}
	}
	if p.castling.Has(queensideRight(turn)) {
		d, c, b, a := kingHome-1, kingHome-2, kingHome-3, kingHome-4
		if p.squares[d].IsEmpty() && p.squares[c].IsEmpty() && p.squares[b].IsEmpty() && p.squares[a] == rook {
			if !p.IsSquareAttacked(kingHome, turn) && !p.IsSquareAttacked(d, turn) {
				*moves = append(*moves, Move{From: kingHome, To: c})
			}
		}
	}
}

// CaptureMoves returns the pseudo-legal moves whose destination held an
// opposing piece before the move (including en passant). Used to seed
// quiescence search.
func (p *Position) CaptureMoves() []Move {
	all := p.PseudoLegalMoves()
	captures := all[:0:0]
	for _, m := range all {
		if p.isCapture(m) {
			captures = append(captures, m)
		}
	}
	return captures
}

func (p *Position) isCapture(m Move) bool {
	if !p.squares[m.To].IsEmpty() {
		return true
	}
	moved := p.squares[m.From]
	return moved.Kind == Pawn && m.To == p.epTarget
}

// LegalMoves returns the pseudo-legal moves that do not leave the mover's
// own king attacked. Each candidate is tried with Make/Undo.
func (p *Position) LegalMoves() []Move {
	return p.filterLegal(p.PseudoLegalMoves())
}

// LegalCaptureMoves returns the legal capture-only subset, for quiescence.
func (p *Position) LegalCaptureMoves() []Move {
	return p.filterLegal(p.CaptureMoves())
}

func (p *Position) filterLegal(candidates []Move) []Move {
	legal := candidates[:0:0]
	turn := p.sideToMove
	for _, m := range candidates {
		undo := p.Make(m)
		if !p.IsChecked(turn) {
			legal = append(legal, m)
		}
		undo.Apply(p)
	}
	return legal
}

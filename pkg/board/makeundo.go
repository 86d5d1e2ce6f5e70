package board

// UndoToken captures the prior value of every field Make mutates, so that
// Apply can restore the position to a byte-identical state. Undo tokens
// must be consumed in reverse order of the Make calls that produced them
// (stack discipline) -- the search never clones positions, it only
// make/undoes recursively.
type UndoToken struct {
	move       Move
	mover      Color
	movedPiece Piece // the piece that stood on move.From before the move

	capturedPiece  Piece
	capturedSquare Square // equals move.To, except for en passant

	isCastle bool
	rookFrom Square
	rookTo   Square

	priorCastling  Castling
	priorEP        Square
	priorFullmoves int
	priorHash      ZobristHash
}

// Make applies m to the position in place and returns an UndoToken that
// reverses it. m is assumed pseudo-legal for the side to move; Make does
// not itself check legality (see spec's error-handling design: callers
// validate membership in LegalMoves, Make trusts them for search speed).
func (p *Position) Make(m Move) UndoToken {
	turn := p.sideToMove
	moved := p.squares[m.From]

	token := UndoToken{
		move:           m,
		mover:          turn,
		movedPiece:     moved,
		priorCastling:  p.castling,
		priorEP:        p.epTarget,
		priorFullmoves: p.fullmoves,
		priorHash:      p.hash,
	}

	p.hash ^= p.zob.pieceKey(m.From, moved)

	// (1) Resolve and remove any captured piece, including en passant.
	capturedSquare := m.To
	if moved.Kind == Pawn && m.To == p.epTarget && p.squares[m.To].IsEmpty() {
		capturedSquare = enPassantCapturedSquare(m.To, turn)
	}
	if captured := p.squares[capturedSquare]; !captured.IsEmpty() {
		p.hash ^= p.zob.pieceKey(capturedSquare, captured)
		p.squares[capturedSquare] = NoPiece
		token.capturedPiece = captured
	}
	token.capturedSquare = capturedSquare

	// (2) King move: drop both of the mover's castling rights, update the
	// cached king square, and relocate the rook if this is a castle.
	if moved.Kind == King {
		p.clearRights(rightsOf(turn))
		p.kingSquare[turn] = m.To

		if fileDiff := m.To.File() - m.From.File(); fileDiff == 2 || fileDiff == -2 {
			rook := Piece{Kind: Rook, Color: turn}
			if fileDiff == 2 {
				token.rookFrom, token.rookTo = m.From+3, m.From+1
			} else {
				token.rookFrom, token.rookTo = m.From-4, m.From-1
			}
			token.isCastle = true

			p.hash ^= p.zob.pieceKey(token.rookFrom, rook)
			p.squares[token.rookFrom] = NoPiece
			p.squares[token.rookTo] = rook
			p.hash ^= p.zob.pieceKey(token.rookTo, rook)
		}
	}

	// (3) Moving onto or off of a corner square retires the right that
	// depends on the rook that started there, whatever piece is involved.
	p.clearRights(cornerRight(m.From))
	p.clearRights(cornerRight(m.To))

	// (4) En-passant target: set behind a pawn double push, cleared otherwise.
	newEP := NoSquare
	if moved.Kind == Pawn {
		if rowDiff := m.To.row() - m.From.row(); rowDiff == 2 || rowDiff == -2 {
			dir := North
			if turn == Black {
				dir = South
			}
			newEP, _ = step(m.From, dir)
		}
	}
	if p.epTarget != NoSquare {
		p.hash ^= p.zob.epKey(p.epTarget)
	}
	p.epTarget = newEP
	if p.epTarget != NoSquare {
		p.hash ^= p.zob.epKey(p.epTarget)
	}

	// (5) Place the mover (or its promotion) at the destination.
	final := moved
	if m.Promotion != Empty {
		final = Piece{Kind: m.Promotion, Color: turn}
	}
	p.squares[m.From] = NoPiece
	p.squares[m.To] = final
	p.hash ^= p.zob.pieceKey(m.To, final)

	if turn == Black {
		p.fullmoves++
	}

	p.sideToMove = turn.Opponent()
	p.hash ^= p.zob.sideKey()

	return token
}

// clearRights XORs out and drops any of rights still held, no-op for rights
// already absent (so callers don't need to guard against double clearing).
func (p *Position) clearRights(rights Castling) {
	for _, r := range [4]Castling{WhiteKingside, WhiteQueenside, BlackKingside, BlackQueenside} {
		if rights.Has(r) && p.castling.Has(r) {
			p.hash ^= p.zob.castlingKey(r)
			p.castling &^= r
		}
	}
}

// enPassantCapturedSquare returns the square of the pawn captured en
// passant, given the capturing pawn's destination and the capturing color.
func enPassantCapturedSquare(to Square, capturer Color) Square {
	dir := South
	if capturer == Black {
		dir = North
	}
	sq, _ := step(to, dir)
	return sq
}

// Apply restores p to the state it was in before the Make call that
// produced this token. Tokens must be applied in reverse order of creation.
func (u UndoToken) Apply(p *Position) {
	if u.isCastle {
		rook := Piece{Kind: Rook, Color: u.mover}
		p.squares[u.rookTo] = NoPiece
		p.squares[u.rookFrom] = rook
	}

	p.squares[u.move.To] = NoPiece
	p.squares[u.move.From] = u.movedPiece

	if !u.capturedPiece.IsEmpty() {
		p.squares[u.capturedSquare] = u.capturedPiece
	}

	if u.movedPiece.Kind == King {
		p.kingSquare[u.mover] = u.move.From
	}

	p.castling = u.priorCastling
	p.epTarget = u.priorEP
	p.fullmoves = u.priorFullmoves
	p.hash = u.priorHash
	p.sideToMove = u.mover
}

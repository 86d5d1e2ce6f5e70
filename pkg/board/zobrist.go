package board

import "math/rand"

// ZobristHash is a 64-bit incrementally-maintained position hash.
//
// See: https://research.cs.wisc.edu/techreports/1970/TR88.pdf.
type ZobristHash uint64

// pieceIndex encodes (color, kind) as (White,Pawn)=0 .. (Black,King)=11,
// matching spec's "table of 64x12 values" layout.
func pieceIndex(c Color, k Kind) int {
	return int(c)*6 + int(k-Pawn)
}

const numPieceKinds = 6 // Pawn, Bishop, Knight, Rook, Queen, King

// ZobristTable is a pseudo-randomized table of keys for computing and
// incrementally maintaining a position hash. Built once per process; all
// positions normally share DefaultZobrist.
type ZobristTable struct {
	pieces   [NumSquares][NumColors * numPieceKinds]ZobristHash
	castling [4]ZobristHash // one key per right: WK, WQ, BK, BQ
	ep       [8]ZobristHash // one key per file
	side     ZobristHash
}

// NewZobristTable builds a table from the given random seed. Tables built
// with different seeds are not hash-compatible with each other.
func NewZobristTable(seed int64) *ZobristTable {
	r := rand.New(rand.NewSource(seed))

	var t ZobristTable
	for sq := Square(0); sq < NumSquares; sq++ {
		for i := range t.pieces[sq] {
			t.pieces[sq][i] = ZobristHash(r.Uint64())
		}
	}
	for i := range t.castling {
		t.castling[i] = ZobristHash(r.Uint64())
	}
	for i := range t.ep {
		t.ep[i] = ZobristHash(r.Uint64())
	}
	t.side = ZobristHash(r.Uint64())
	return &t
}

// DefaultZobrist is the process-wide shared Zobrist table. It is seeded
// deterministically so repeated runs and tests see stable hashes; callers
// who need an independently-randomized table can build one with
// NewZobristTable.
var DefaultZobrist = NewZobristTable(0x636f727361697221)

// pieceKey returns the key for placing piece p on square sq.
func (t *ZobristTable) pieceKey(sq Square, p Piece) ZobristHash {
	return t.pieces[sq][pieceIndex(p.Color, p.Kind)]
}

// castlingKey returns the key for a single castling right.
func (t *ZobristTable) castlingKey(right Castling) ZobristHash {
	switch right {
	case WhiteKingside:
		return t.castling[0]
	case WhiteQueenside:
		return t.castling[1]
	case BlackKingside:
		return t.castling[2]
	case BlackQueenside:
		return t.castling[3]
	default:
		return 0
	}
}

// epKey returns the key for an en-passant target on the given square's file.
func (t *ZobristTable) epKey(sq Square) ZobristHash {
	return t.ep[sq.File()]
}

// sideKey returns the key that is XORed in whenever the side to move flips.
func (t *ZobristTable) sideKey() ZobristHash {
	return t.side
}

// Hash computes the from-scratch Zobrist hash of a position. Used to seed a
// freshly-constructed Position and to validate the incrementally-maintained
// hash in tests.
func (t *ZobristTable) Hash(squares [NumSquares]Piece, turn Color, castling Castling, ep Square) ZobristHash {
	var h ZobristHash
	for sq := Square(0); sq < NumSquares; sq++ {
		if p := squares[sq]; !p.IsEmpty() {
			h ^= t.pieceKey(sq, p)
		}
	}
	for _, right := range [4]Castling{WhiteKingside, WhiteQueenside, BlackKingside, BlackQueenside} {
		if castling.Has(right) {
			h ^= t.castlingKey(right)
		}
	}
	if ep != NoSquare {
		h ^= t.epKey(ep)
	}
	if turn == Black {
		h ^= t.sideKey()
	}
	return h
}

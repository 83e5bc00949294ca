package board

// Zobrist keys identify a position by piece placement, side to move,
// castling rights and en-passant file. The generator is seeded with a
// constant so keys, and therefore archived hashes, are stable across runs.
var (
	zobristPiece      [2][6][64]uint64
	zobristCastling   [16]uint64
	zobristEnPassant  [8]uint64
	zobristSideToMove uint64
)

func init() {
	rng := xorshift{state: 0x98F107A2BEEF1234}
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// xorshift is xorshift64*.
type xorshift struct {
	state uint64
}

func (x *xorshift) next() uint64 {
	x.state ^= x.state >> 12
	x.state ^= x.state << 25
	x.state ^= x.state >> 27
	return x.state * 0x2545F4914F6CDD1D
}

// Hash returns the position's Zobrist key. Clocks do not take part, so
// positions reached at different move numbers share a key.
func (p *Position) Hash() uint64 {
	var h uint64
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for bb := p.Pieces[c][pt]; bb != 0; {
				h ^= zobristPiece[c][pt][bb.PopLSB()]
			}
		}
	}
	if p.SideToMove == Black {
		h ^= zobristSideToMove
	}
	h ^= zobristCastling[p.CastlingRights]
	if p.EnPassant != NoSquare {
		h ^= zobristEnPassant[p.EnPassant.File()]
	}
	return h
}

package board

// Precomputed attack sets for the pieces that do not slide.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // [Color][Square]
)

func init() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		knightAttacks[sq] = (bb<<17)&NotFileA |
			(bb<<15)&NotFileH |
			(bb>>15)&NotFileA |
			(bb>>17)&NotFileH |
			(bb<<10)&NotFileAB |
			(bb<<6)&NotFileGH |
			(bb>>6)&NotFileAB |
			(bb>>10)&NotFileGH

		kingAttacks[sq] = bb.North() | bb.South() | bb.East() | bb.West() |
			bb.NorthEast() | bb.NorthWest() | bb.SouthEast() | bb.SouthWest()

		pawnAttacks[White][sq] = bb.NorthEast() | bb.NorthWest()
		pawnAttacks[Black][sq] = bb.SouthEast() | bb.SouthWest()
	}
}

// KnightAttacks returns the squares a knight on sq jumps to.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the squares adjacent to sq.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the diagonal capture squares of a c pawn on sq.
func PawnAttacks(sq Square, c Color) Bitboard {
	return pawnAttacks[c][sq]
}

// rayAttacks walks each direction from sq up to the board edge, stopping on
// (and including) the first occupied square.
func rayAttacks(sq Square, dirs []Direction, occupied Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		to := int(sq)
		for step := EdgeDistance(sq, d); step > 0; step-- {
			to += d.Offset()
			target := SquareBB(Square(to))
			attacks |= target
			if occupied&target != 0 {
				break
			}
		}
	}
	return attacks
}

// BishopAttacks returns diagonal rays from sq blocked by occupied.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return rayAttacks(sq, diagonalDirections[:], occupied)
}

// RookAttacks returns orthogonal rays from sq blocked by occupied.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return rayAttacks(sq, orthogonalDirections[:], occupied)
}

// QueenAttacks is the union of bishop and rook rays.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return rayAttacks(sq, allDirections[:], occupied)
}

// pieceAttacks returns what a single piece of type pt and color c on sq
// threatens given the board occupancy.
func pieceAttacks(pt PieceType, c Color, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Pawn:
		return pawnAttacks[c][sq]
	case Knight:
		return knightAttacks[sq]
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	case King:
		return kingAttacks[sq]
	}
	return Empty
}

// Attacks returns every square c's pieces threaten. Squares holding c's own
// pieces are included: this is an attack map, not a list of destinations.
func (p *Position) Attacks(c Color) Bitboard {
	occupied := p.AllOccupied()

	pawns := p.Pieces[c][Pawn]
	var attacks Bitboard
	if c == White {
		attacks = pawns.NorthEast() | pawns.NorthWest()
	} else {
		attacks = pawns.SouthEast() | pawns.SouthWest()
	}

	for pt := Knight; pt <= King; pt++ {
		pieces := p.Pieces[c][pt]
		for pieces != 0 {
			attacks |= pieceAttacks(pt, c, pieces.PopLSB(), occupied)
		}
	}
	return attacks
}

// AttackersTo returns the pieces of color by that attack sq.
func (p *Position) AttackersTo(sq Square, by Color) Bitboard {
	occupied := p.AllOccupied()
	return pawnAttacks[by.Other()][sq]&p.Pieces[by][Pawn] |
		knightAttacks[sq]&p.Pieces[by][Knight] |
		kingAttacks[sq]&p.Pieces[by][King] |
		BishopAttacks(sq, occupied)&(p.Pieces[by][Bishop]|p.Pieces[by][Queen]) |
		RookAttacks(sq, occupied)&(p.Pieces[by][Rook]|p.Pieces[by][Queen])
}

// IsSquareAttacked reports whether any piece of color by attacks sq.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	return p.AttackersTo(sq, by) != 0
}

// InCheck reports whether c's king stands on a square the opponent attacks.
func (p *Position) InCheck(c Color) bool {
	return p.Pieces[c][King]&p.Attacks(c.Other()) != 0
}

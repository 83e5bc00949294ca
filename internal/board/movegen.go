package board

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

// GeneratePseudoLegalMoves lists the side to move's moves that follow the
// piece movement rules, without checking king safety. Castling is included
// only when ValidateMove would accept it.
func (p *Position) GeneratePseudoLegalMoves() []Move {
	us := p.SideToMove
	// Friendly pieces and the enemy king are never destinations.
	targets := ^(p.Occupied[us] | p.Pieces[us.Other()][King])

	moves := make([]Move, 0, 64)
	moves = p.appendPawnMoves(moves, us, targets)

	for pt := Knight; pt <= King; pt++ {
		pieces := p.Pieces[us][pt]
		for pieces != 0 {
			from := pieces.PopLSB()
			var dests Bitboard
			switch pt {
			case Knight:
				dests = KnightAttacks(from)
			case King:
				dests = KingAttacks(from)
			default:
				dests = p.SlidingDestinations(pt, from)
			}
			dests &= targets
			for dests != 0 {
				moves = append(moves, NewMove(from, dests.PopLSB()))
			}
		}
	}

	for _, r := range castleRules {
		if r.color == us && p.Pieces[us][King].IsSet(r.kingFrom) && p.validateCastle(r) == nil {
			moves = append(moves, NewMove(r.kingFrom, r.kingTo))
		}
	}
	return moves
}

// appendPawnMoves adds pushes, double pushes, captures and en-passant
// captures, fanning promotions out into one move per piece.
func (p *Position) appendPawnMoves(moves []Move, us Color, targets Bitboard) []Move {
	pawns := p.Pieces[us][Pawn]
	empty := ^p.AllOccupied()
	enemies := p.Occupied[us.Other()] & targets

	var push1, push2, attackW, attackE Bitboard
	var forward int
	if us == White {
		forward = 8
		push1 = pawns.North() & empty
		push2 = (push1 & (Rank1 << 16)).North() & empty
		attackW = pawns.NorthWest()
		attackE = pawns.NorthEast()
	} else {
		forward = -8
		push1 = pawns.South() & empty
		push2 = (push1 & (Rank8 >> 16)).South() & empty
		attackW = pawns.SouthWest()
		attackE = pawns.SouthEast()
	}

	var ep Bitboard
	if p.EnPassant != NoSquare && p.Pieces[us.Other()][Pawn].IsSet(enPassantVictim(p.EnPassant, us)) {
		ep = SquareBB(p.EnPassant)
	}

	add := func(from, to Square) {
		if to.RelativeRank(us) == 7 {
			for _, pt := range promotionPieces {
				moves = append(moves, NewPromotion(from, to, pt))
			}
			return
		}
		moves = append(moves, NewMove(from, to))
	}

	for bb := push1; bb != 0; {
		to := bb.PopLSB()
		add(Square(int(to)-forward), to)
	}
	for bb := push2; bb != 0; {
		to := bb.PopLSB()
		moves = append(moves, NewMove(Square(int(to)-2*forward), to))
	}
	// A west capture lands one file left of the pawn, so the origin is one file right.
	for bb := attackW & (enemies | ep); bb != 0; {
		to := bb.PopLSB()
		add(Square(int(to)-forward+1), to)
	}
	for bb := attackE & (enemies | ep); bb != 0; {
		to := bb.PopLSB()
		add(Square(int(to)-forward-1), to)
	}
	return moves
}

// GenerateLegalMoves lists every move the side to move can actually play.
// Each pseudo-legal candidate is tried on a clone; the order is unspecified.
func (p *Position) GenerateLegalMoves() []Move {
	pseudo := p.GeneratePseudoLegalMoves()
	legal := pseudo[:0]
	for _, m := range pseudo {
		if p.Copy().Apply(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves reports whether the side to move has at least one move.
func (p *Position) HasLegalMoves() bool {
	for _, m := range p.GeneratePseudoLegalMoves() {
		if p.Copy().Apply(m) {
			return true
		}
	}
	return false
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(p *Position, depth int) int64 {
	if depth <= 0 {
		return 1
	}

	moves := p.GenerateLegalMoves()
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		child := p.Copy()
		child.Apply(m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

package board

// castleRule describes one of the four castling moves.
type castleRule struct {
	color    Color
	right    CastlingRights
	kingFrom Square
	kingTo   Square
	rookFrom Square
	rookTo   Square
	between  Bitboard  // must be empty
	path     [3]Square // king's start, transit and landing squares; must not be attacked
}

var castleRules = [4]castleRule{
	{White, WhiteKingSideCastle, E1, G1, H1, F1, SquareBB(F1) | SquareBB(G1), [3]Square{E1, F1, G1}},
	{White, WhiteQueenSideCastle, E1, C1, A1, D1, SquareBB(B1) | SquareBB(C1) | SquareBB(D1), [3]Square{E1, D1, C1}},
	{Black, BlackKingSideCastle, E8, G8, H8, F8, SquareBB(F8) | SquareBB(G8), [3]Square{E8, F8, G8}},
	{Black, BlackQueenSideCastle, E8, C8, A8, D8, SquareBB(B8) | SquareBB(C8) | SquareBB(D8), [3]Square{E8, D8, C8}},
}

// castleRuleFor finds the castling move a king of color c makes from→to.
func castleRuleFor(c Color, from, to Square) (castleRule, bool) {
	for _, r := range castleRules {
		if r.color == c && r.kingFrom == from && r.kingTo == to {
			return r, true
		}
	}
	return castleRule{}, false
}

// IsValidMove reports whether m obeys the movement rules of the piece on its
// origin square. It does not test whether m would leave the mover in check;
// Apply does that.
func (p *Position) IsValidMove(m Move) bool {
	return p.ValidateMove(m) == nil
}

// ValidateMove is IsValidMove with the reason for a rejection. Returned errors
// wrap ErrIllegalMove. The position is never modified.
func (p *Position) ValidateMove(m Move) error {
	if !m.From.IsValid() || !m.To.IsValid() {
		return errOffBoard
	}
	if m.From == m.To {
		return errNullMove
	}

	piece := p.PieceAt(m.From)
	if piece == NoPiece {
		return errNoPiece
	}
	us := p.SideToMove
	if piece.Color() != us {
		return errWrongColor
	}
	pt := piece.Type()
	if m.Promotion != NoPieceType && pt != Pawn {
		return errPromotionNotPawn
	}
	if p.Occupied[us].IsSet(m.To) {
		return errOwnPiece
	}
	if p.Pieces[us.Other()][King].IsSet(m.To) {
		return errKingCapture
	}

	switch pt {
	case Pawn:
		return p.validatePawn(m)
	case Knight:
		df, dr := abs(m.To.File()-m.From.File()), abs(m.To.Rank()-m.From.Rank())
		if df*dr != 2 {
			return errKnightPattern
		}
	case Bishop, Rook, Queen:
		if !p.SlidingDestinations(pt, m.From).IsSet(m.To) {
			return errSliderPath
		}
	case King:
		df, dr := abs(m.To.File()-m.From.File()), abs(m.To.Rank()-m.From.Rank())
		if max(df, dr) == 1 {
			return nil
		}
		rule, ok := castleRuleFor(us, m.From, m.To)
		if !ok {
			return errKingPattern
		}
		return p.validateCastle(rule)
	}
	return nil
}

func (p *Position) validatePawn(m Move) error {
	us := p.SideToMove
	them := us.Other()
	forward, startRank, lastRank := 1, 1, 7
	if us == Black {
		forward, startRank, lastRank = -1, 6, 0
	}

	df := m.To.File() - m.From.File()
	dr := m.To.Rank() - m.From.Rank()
	occupied := p.AllOccupied()

	switch {
	case df == 0 && dr == forward:
		if occupied.IsSet(m.To) {
			return errPawnBlocked
		}
	case df == 0 && dr == 2*forward:
		if m.From.Rank() != startRank {
			return errPawnDoubleStep
		}
		skipped := Square(int(m.From) + 8*forward)
		if occupied.IsSet(skipped) || occupied.IsSet(m.To) {
			return errPawnBlocked
		}
	case abs(df) == 1 && dr == forward:
		if p.Occupied[them].IsSet(m.To) {
			break
		}
		if m.To != p.EnPassant || !p.Pieces[them][Pawn].IsSet(enPassantVictim(m.To, us)) {
			return errPawnCaptureEmpty
		}
	default:
		return errPawnPattern
	}

	if m.To.Rank() == lastRank {
		if !m.Promotion.CanPromoteTo() {
			return errPromotionRequired
		}
	} else if m.Promotion != NoPieceType {
		return errPromotionRank
	}
	return nil
}

// validateCastle checks the castling right, the empty squares between king and
// rook, the rook itself, and that no square the king stands on or crosses is
// attacked.
func (p *Position) validateCastle(r castleRule) error {
	if p.CastlingRights&r.right == 0 || !p.Pieces[r.color][Rook].IsSet(r.rookFrom) {
		return errCastleRights
	}
	if p.AllOccupied()&r.between != 0 {
		return errCastleBlocked
	}
	them := r.color.Other()
	for _, sq := range r.path {
		if p.IsSquareAttacked(sq, them) {
			return errCastleAttacked
		}
	}
	return nil
}

// SlidingDestinations returns the squares a slider of type pt on from can move
// to: each ray stops before a friendly piece and ends on an enemy piece.
// Non-sliding types yield an empty set.
func (p *Position) SlidingDestinations(pt PieceType, from Square) Bitboard {
	owner := p.PieceAt(from).Color()
	if owner == NoColor {
		owner = p.SideToMove
	}

	var rays Bitboard
	occupied := p.AllOccupied()
	switch pt {
	case Bishop:
		rays = BishopAttacks(from, occupied)
	case Rook:
		rays = RookAttacks(from, occupied)
	case Queen:
		rays = QueenAttacks(from, occupied)
	default:
		return Empty
	}
	return rays &^ p.Occupied[owner]
}

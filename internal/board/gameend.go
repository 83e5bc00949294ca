package board

// Status classifies a position from the side to move's point of view.
type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	FiftyMoveRule
)

func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	case FiftyMoveRule:
		return "fifty-move rule"
	default:
		return "ongoing"
	}
}

// IsOver reports whether the game has ended.
func (s Status) IsOver() bool {
	return s != Ongoing
}

// IsDraw reports whether the game ended without a winner.
func (s Status) IsDraw() bool {
	return s != Ongoing && s != Checkmate
}

// IsCheckmate reports whether the side to move is in check and every
// candidate move leaves it in check.
func (p *Position) IsCheckmate() bool {
	if !p.InCheck(p.SideToMove) {
		return false
	}
	for _, m := range p.GeneratePseudoLegalMoves() {
		if p.Copy().Apply(m) {
			return false
		}
	}
	return true
}

// IsStalemate reports a drawn position for c: c is not in check and either
// the side to move has no legal move or a draw rule applies.
func (p *Position) IsStalemate(c Color) bool {
	if p.InCheck(c) {
		return false
	}
	if !p.HasLegalMoves() {
		return true
	}
	return p.IsInsufficientMaterial() || p.IsFiftyMoveDraw() || p.IsThreefoldRepetition()
}

// Status tells whether the game goes on and, if not, why it ended.
// Checkmate and stalemate take precedence over the draw rules.
func (p *Position) Status() Status {
	if !p.HasLegalMoves() {
		if p.InCheck(p.SideToMove) {
			return Checkmate
		}
		return Stalemate
	}
	switch {
	case p.IsInsufficientMaterial():
		return InsufficientMaterial
	case p.IsFiftyMoveDraw():
		return FiftyMoveRule
	}
	return Ongoing
}

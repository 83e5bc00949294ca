package board

import "fmt"

// Move is a plain from/to pair with an optional promotion piece.
// Two moves are equal when their fields are equal.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType // NoPieceType unless the move promotes
}

// NoMove is the zero-information move.
var NoMove = Move{From: NoSquare, To: NoSquare, Promotion: NoPieceType}

// NewMove creates a non-promoting move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to, Promotion: NoPieceType}
}

// NewPromotion creates a pawn move that promotes to pt.
func NewPromotion(from, to Square, pt PieceType) Move {
	return Move{From: from, To: to, Promotion: pt}
}

// IsPromotion reports whether the move carries a promotion piece.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// IsCapture reports whether m takes a piece in pos, en passant included.
func (m Move) IsCapture(pos *Position) bool {
	if !pos.IsEmpty(m.To) {
		return true
	}
	return m.To == pos.EnPassant && pos.PieceAt(m.From).Type() == Pawn
}

// IsCastling reports whether m is a king's castling move in pos.
func (m Move) IsCastling(pos *Position) bool {
	piece := pos.PieceAt(m.From)
	if piece.Type() != King {
		return false
	}
	_, ok := castleRuleFor(piece.Color(), m.From, m.To)
	return ok
}

// String returns UCI coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(pieceChars[6+m.Promotion])
	}
	return s
}

// ParseMove decodes UCI coordinate notation: two squares and an optional
// promotion letter (q, r, b or n).
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("%w: %q: want 4 or 5 characters", ErrInvalidMove, s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	if len(s) == 4 {
		return NewMove(from, to), nil
	}
	promo := promotionFromChar(s[4])
	if promo == NoPieceType {
		return NoMove, fmt.Errorf("%w: %q: bad promotion piece %q", ErrInvalidMove, s, s[4])
	}
	return NewPromotion(from, to, promo), nil
}

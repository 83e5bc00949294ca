package board

import (
	"fmt"
	"strings"
)

// CastlingRights is a 4-bit mask of the castling options still available.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling field.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var sb strings.Builder
	for i, c := range "KQkq" {
		if cr&(1<<i) != 0 {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// Position is the full game state between two plies. The piece bitboards are
// the ground truth; Occupied mirrors them and is updated with every edit.
type Position struct {
	Pieces   [2][6]Bitboard // [Color][PieceType]
	Occupied [2]Bitboard    // union of each color's piece bitboards

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // square skipped by the last double pawn push, NoSquare if none
	HalfMoveClock  int    // plies since the last pawn move or capture
	FullMoveNumber int    // starts at 1, incremented after Black moves
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return pos
}

// Copy returns an independent clone. Position holds no pointers, so a value
// copy is a deep copy.
func (p *Position) Copy() *Position {
	c := *p
	return &c
}

// AllOccupied returns every occupied square.
func (p *Position) AllOccupied() Bitboard {
	return p.Occupied[White] | p.Occupied[Black]
}

// Occupancy returns the squares held by c.
func (p *Position) Occupancy(c Color) Bitboard {
	return p.Occupied[c]
}

// PiecesOf returns the bitboard of c's pieces of type pt.
func (p *Position) PiecesOf(c Color, pt PieceType) Bitboard {
	return p.Pieces[c][pt]
}

// KingSquare returns c's king square, or NoSquare if c has no king.
func (p *Position) KingSquare(c Color) Square {
	return p.Pieces[c][King].LSB()
}

// PieceAt returns the piece on sq, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	bb := SquareBB(sq)
	for c := White; c <= Black; c++ {
		if p.Occupied[c]&bb == 0 {
			continue
		}
		for pt := Pawn; pt <= King; pt++ {
			if p.Pieces[c][pt]&bb != 0 {
				return NewPiece(pt, c)
			}
		}
	}
	return NoPiece
}

// IsEmpty reports whether no piece stands on sq.
func (p *Position) IsEmpty(sq Square) bool {
	return !p.AllOccupied().IsSet(sq)
}

// putPiece and removePiece are the only writers of the piece bitboards; both
// update the matching occupancy mask in the same step.
func (p *Position) putPiece(sq Square, c Color, pt PieceType) {
	bb := SquareBB(sq)
	p.Pieces[c][pt] |= bb
	p.Occupied[c] |= bb
}

func (p *Position) removePiece(sq Square, c Color, pt PieceType) {
	bb := SquareBB(sq)
	p.Pieces[c][pt] &^= bb
	p.Occupied[c] &^= bb
}

// cornerRights maps a rook home corner to the right it carries.
func cornerRights(sq Square) CastlingRights {
	switch sq {
	case H1:
		return WhiteKingSideCastle
	case A1:
		return WhiteQueenSideCastle
	case H8:
		return BlackKingSideCastle
	case A8:
		return BlackQueenSideCastle
	}
	return NoCastling
}

// Apply plays m if it is legal and reports whether it did. A rejected move
// leaves the position untouched.
func (p *Position) Apply(m Move) bool {
	return p.MakeMove(m) == nil
}

// MakeMove plays m, or returns an error wrapping ErrIllegalMove explaining
// why it was refused. On error the position is unchanged.
func (p *Position) MakeMove(m Move) error {
	if err := p.ValidateMove(m); err != nil {
		traceRejected(p, m, err)
		return err
	}

	us := p.SideToMove
	them := us.Other()
	pt := p.PieceAt(m.From).Type()
	snapshot := *p

	captured := NoPieceType
	if pt == Pawn && m.To == p.EnPassant {
		// The captured pawn sits behind the target square, not on it.
		p.removePiece(enPassantVictim(m.To, us), them, Pawn)
		captured = Pawn
	} else if victim := p.PieceAt(m.To); victim != NoPiece {
		captured = victim.Type()
		p.removePiece(m.To, them, captured)
	}

	p.removePiece(m.From, us, pt)
	if m.Promotion != NoPieceType {
		p.putPiece(m.To, us, m.Promotion)
	} else {
		p.putPiece(m.To, us, pt)
	}

	if pt == King {
		if rule, ok := castleRuleFor(us, m.From, m.To); ok {
			p.removePiece(rule.rookFrom, us, Rook)
			p.putPiece(rule.rookTo, us, Rook)
		}
	}

	if p.InCheck(us) {
		*p = snapshot
		traceRejected(p, m, errKingExposed)
		return errKingExposed
	}

	switch {
	case pt == King && m.From == homeKingSquare(us):
		p.CastlingRights &^= colorRights(us)
	case pt == Rook:
		p.CastlingRights &^= cornerRights(m.From) & colorRights(us)
	}
	if captured == Rook {
		p.CastlingRights &^= cornerRights(m.To) & colorRights(them)
	}

	p.EnPassant = NoSquare
	if pt == Pawn && abs(int(m.To)-int(m.From)) == 16 {
		p.EnPassant = Square((int(m.From) + int(m.To)) / 2)
	}

	if pt == Pawn || captured != NoPieceType {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}
	if us == Black {
		p.FullMoveNumber++
	}
	p.SideToMove = them
	return nil
}

func enPassantVictim(target Square, mover Color) Square {
	if mover == White {
		return target - 8
	}
	return target + 8
}

func homeKingSquare(c Color) Square {
	if c == White {
		return E1
	}
	return E8
}

func colorRights(c Color) CastlingRights {
	if c == White {
		return WhiteKingSideCastle | WhiteQueenSideCastle
	}
	return BlackKingSideCastle | BlackQueenSideCastle
}

// IsInsufficientMaterial reports king versus king, or king and a single
// minor piece versus a bare king.
func (p *Position) IsInsufficientMaterial() bool {
	for c := White; c <= Black; c++ {
		if p.Pieces[c][Pawn]|p.Pieces[c][Rook]|p.Pieces[c][Queen] != 0 {
			return false
		}
	}
	white := (p.Pieces[White][Knight] | p.Pieces[White][Bishop]).PopCount()
	black := (p.Pieces[Black][Knight] | p.Pieces[Black][Bishop]).PopCount()
	return white+black <= 1
}

// FiftyMoveLimit is the half-move clock value at which the game is drawn.
const FiftyMoveLimit = 50

// IsFiftyMoveDraw reports whether the half-move clock reached FiftyMoveLimit.
func (p *Position) IsFiftyMoveDraw() bool {
	return p.HalfMoveClock >= FiftyMoveLimit
}

// IsThreefoldRepetition always reports false: a position carries no history.
// TODO: count Hash() occurrences across a game's positions once a history
// store is threaded through Position.
func (p *Position) IsThreefoldRepetition() bool {
	return false
}

// String draws the board with rank 8 on top followed by the state fields.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			if piece := p.PieceAt(NewSquare(file, rank)); piece == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(piece.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", p.SideToMove)
	fmt.Fprintf(&sb, "Castling: %s\n", p.CastlingRights)
	fmt.Fprintf(&sb, "En passant: %s\n", p.EnPassant)
	fmt.Fprintf(&sb, "Half-move clock: %d\n", p.HalfMoveClock)
	fmt.Fprintf(&sb, "Full move: %d\n", p.FullMoveNumber)
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

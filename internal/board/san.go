package board

import (
	"fmt"
	"strings"
)

const sanPieceLetters = "PNBRQK"

// ToSAN renders m in standard algebraic notation for pos, e.g. "Nbd7",
// "exd6", "e8=Q+", "O-O". m must be legal in pos; otherwise the UCI form
// is returned.
func (m Move) ToSAN(pos *Position) string {
	piece := pos.PieceAt(m.From)
	after := pos.Copy()
	if piece == NoPiece || !after.Apply(m) {
		return m.String()
	}

	var sb strings.Builder
	switch {
	case m.IsCastling(pos):
		if m.To.File() == 6 {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
	default:
		pt := piece.Type()
		capture := m.IsCapture(pos)
		if pt != Pawn {
			sb.WriteByte(sanPieceLetters[pt])
			sb.WriteString(disambiguation(pos, m, pt))
		} else if capture {
			sb.WriteByte(byte('a' + m.From.File()))
		}
		if capture {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(sanPieceLetters[m.Promotion])
		}
	}

	if after.IsCheckmate() {
		sb.WriteByte('#')
	} else if after.InCheck(after.SideToMove) {
		sb.WriteByte('+')
	}
	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell m
// apart from other legal moves of the same piece type to the same square.
func disambiguation(pos *Position, m Move, pt PieceType) string {
	var rivals []Square
	for _, other := range pos.GenerateLegalMoves() {
		if other.To == m.To && other.From != m.From && pos.PieceAt(other.From).Type() == pt {
			rivals = append(rivals, other.From)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		sameFile = sameFile || sq.File() == m.From.File()
		sameRank = sameRank || sq.Rank() == m.From.Rank()
	}
	switch {
	case !sameFile:
		return string(rune('a' + m.From.File()))
	case !sameRank:
		return string(rune('1' + m.From.Rank()))
	}
	return m.From.String()
}

// ParseSAN finds the legal move in pos that the SAN string s describes.
func ParseSAN(s string, pos *Position) (Move, error) {
	s = strings.TrimRight(strings.TrimSpace(s), "+#!?")
	legal := pos.GenerateLegalMoves()

	if s == "O-O" || s == "0-0" || s == "O-O-O" || s == "0-0-0" {
		file := 6
		if len(s) == 5 {
			file = 2
		}
		for _, m := range legal {
			if m.IsCastling(pos) && m.To.File() == file {
				return m, nil
			}
		}
		return NoMove, fmt.Errorf("%w: %q: castling not available", ErrInvalidMove, s)
	}

	promo := NoPieceType
	if i := strings.IndexByte(s, '='); i >= 0 && i+1 < len(s) {
		promo = promotionFromChar(s[i+1] | 0x20)
		if promo == NoPieceType {
			return NoMove, fmt.Errorf("%w: %q: bad promotion piece", ErrInvalidMove, s)
		}
		s = s[:i]
	}
	capture := strings.Contains(s, "x")
	s = strings.ReplaceAll(s, "x", "")

	pt := Pawn
	if s != "" {
		if i := strings.IndexByte(sanPieceLetters[1:], s[0]); i >= 0 {
			pt = PieceType(i + 1)
			s = s[1:]
		}
	}
	if len(s) < 2 {
		return NoMove, fmt.Errorf("%w: %q: missing destination", ErrInvalidMove, s)
	}
	dest, err := ParseSquare(s[len(s)-2:])
	if err != nil {
		return NoMove, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}

	fileHint, rankHint := -1, -1
	for _, c := range s[:len(s)-2] {
		switch {
		case c >= 'a' && c <= 'h':
			fileHint = int(c - 'a')
		case c >= '1' && c <= '8':
			rankHint = int(c - '1')
		}
	}

	found := NoMove
	for _, m := range legal {
		switch {
		case m.To != dest, pos.PieceAt(m.From).Type() != pt, m.Promotion != promo:
			continue
		case fileHint >= 0 && m.From.File() != fileHint, rankHint >= 0 && m.From.Rank() != rankHint:
			continue
		case capture && !m.IsCapture(pos):
			continue
		}
		if found != NoMove {
			return NoMove, fmt.Errorf("%w: %q is ambiguous", ErrInvalidMove, s)
		}
		found = m
	}
	if found == NoMove {
		return NoMove, fmt.Errorf("%w: %q matches no legal move", ErrInvalidMove, s)
	}
	return found, nil
}

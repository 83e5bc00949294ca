package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a Position from the six FEN fields. Any malformed field
// rejects the whole input; no partially built position is returned.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w: need 6 fields, got %d", ErrInvalidFEN, len(fields))
	}

	pos := &Position{EnPassant: NoSquare}
	if err := parsePlacement(pos, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}

	rights, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}
	pos.CastlingRights = rights

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil || (sq.Rank() != 2 && sq.Rank() != 5) {
			return nil, fmt.Errorf("%w: en-passant square %q", ErrInvalidFEN, fields[3])
		}
		pos.EnPassant = sq
	}

	if pos.HalfMoveClock, err = strconv.Atoi(fields[4]); err != nil || pos.HalfMoveClock < 0 {
		return nil, fmt.Errorf("%w: half-move clock %q", ErrInvalidFEN, fields[4])
	}
	if pos.FullMoveNumber, err = strconv.Atoi(fields[5]); err != nil || pos.FullMoveNumber < 1 {
		return nil, fmt.Errorf("%w: full-move number %q", ErrInvalidFEN, fields[5])
	}
	return pos, nil
}

// parsePlacement reads the piece field, rank 8 first.
func parsePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: need 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}

	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
			} else {
				piece := PieceFromChar(c)
				if piece == NoPiece {
					return fmt.Errorf("%w: piece character %q", ErrInvalidFEN, c)
				}
				if file > 7 {
					return fmt.Errorf("%w: rank %d has more than 8 files", ErrInvalidFEN, rank+1)
				}
				pos.putPiece(NewSquare(file, rank), piece.Color(), piece.Type())
				file++
			}
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d covers %d files", ErrInvalidFEN, rank+1, file)
		}
	}
	return nil
}

func parseCastling(field string) (CastlingRights, error) {
	if field == "-" {
		return NoCastling, nil
	}
	rights := NoCastling
	for i := 0; i < len(field); i++ {
		idx := strings.IndexByte("KQkq", field[i])
		if idx < 0 || rights&(1<<idx) != 0 {
			return NoCastling, fmt.Errorf("%w: castling field %q", ErrInvalidFEN, field)
		}
		rights |= 1 << idx
	}
	return rights, nil
}

// ToFEN renders the six FEN fields.
func (p *Position) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if p.SideToMove == Black {
		side = "b"
	}
	fmt.Fprintf(&sb, " %s %s %s %d %d", side, p.CastlingRights, p.EnPassant, p.HalfMoveClock, p.FullMoveNumber)
	return sb.String()
}

// Package render draws positions as text, SVG and PNG.
package render

import (
	"strings"

	"github.com/JusticeJJackson/ChessBot/internal/board"
)

// Text draws pos as an 8x8 grid of FEN letters with rank 8 on top and '.'
// for empty squares, framed by rank numbers and file letters.
func Text(pos *board.Position) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			if p := pos.PieceAt(board.NewSquare(file, rank)); p == board.NoPiece {
				sb.WriteByte('.')
			} else {
				sb.WriteString(p.String())
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

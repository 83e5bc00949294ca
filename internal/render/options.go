package render

import (
	"fmt"
	"image/color"

	"github.com/JusticeJJackson/ChessBot/internal/board"
)

// Options controls the image renderers.
type Options struct {
	SquareSize int  // pixels per square
	Flip       bool // draw from Black's side
	Coords     bool // file and rank labels (SVG only)
	Light      color.RGBA
	Dark       color.RGBA
	Highlight  color.RGBA
	// Marked squares get the highlight color, e.g. the last move.
	Marked []board.Square
}

// DefaultOptions returns the classic brown board at 60 pixels per square.
func DefaultOptions() Options {
	return Options{
		SquareSize: 60,
		Coords:     true,
		Light:      color.RGBA{0xf0, 0xd9, 0xb5, 0xff},
		Dark:       color.RGBA{0xb5, 0x88, 0x63, 0xff},
		Highlight:  color.RGBA{0xcd, 0xd2, 0x6a, 0xff},
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.SquareSize <= 0 {
		o.SquareSize = def.SquareSize
	}
	if o.Light == (color.RGBA{}) {
		o.Light = def.Light
	}
	if o.Dark == (color.RGBA{}) {
		o.Dark = def.Dark
	}
	if o.Highlight == (color.RGBA{}) {
		o.Highlight = def.Highlight
	}
	return o
}

// origin returns the top-left pixel of sq.
func (o Options) origin(sq board.Square) (x, y int) {
	col, row := sq.File(), 7-sq.Rank()
	if o.Flip {
		col, row = 7-col, 7-row
	}
	return col * o.SquareSize, row * o.SquareSize
}

func (o Options) squareColor(sq board.Square) color.RGBA {
	for _, m := range o.Marked {
		if m == sq {
			return o.Highlight
		}
	}
	if (sq.File()+sq.Rank())%2 == 0 {
		return o.Dark
	}
	return o.Light
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

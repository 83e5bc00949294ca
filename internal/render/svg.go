package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/JusticeJJackson/ChessBot/internal/board"
)

// glyphs are the Unicode chess symbols indexed by board.Piece.
var glyphs = [12]string{
	"♙", "♘", "♗", "♖", "♕", "♔",
	"♟", "♞", "♝", "♜", "♛", "♚",
}

// SVG writes pos as a standalone SVG document.
func SVG(w io.Writer, pos *board.Position, opts Options) error {
	opts = opts.withDefaults()
	ew := &errWriter{w: w}
	drawSVG(ew, pos, opts, true)
	return ew.err
}

// drawSVG emits the board. Without glyphs, pieces become plain discs so the
// result only uses shapes a rasterizer without text support can draw.
func drawSVG(w io.Writer, pos *board.Position, opts Options, withGlyphs bool) {
	size := 8 * opts.SquareSize
	canvas := svg.New(w)
	canvas.Startview(size, size, 0, 0, size, size)

	for sq := board.A1; sq <= board.H8; sq++ {
		x, y := opts.origin(sq)
		canvas.Rect(x, y, opts.SquareSize, opts.SquareSize, fmt.Sprintf("fill=%q", hex(opts.squareColor(sq))))
	}

	if withGlyphs && opts.Coords {
		labelCoords(canvas, opts)
	}

	for sq := board.A1; sq <= board.H8; sq++ {
		p := pos.PieceAt(sq)
		if p == board.NoPiece {
			continue
		}
		if withGlyphs {
			drawGlyph(canvas, opts, sq, p)
		} else {
			drawDisc(canvas, opts, sq, p)
		}
	}
	canvas.End()
}

func drawGlyph(canvas *svg.SVG, opts Options, sq board.Square, p board.Piece) {
	x, y := opts.origin(sq)
	half := opts.SquareSize / 2
	canvas.Text(x+half, y+half, glyphs[p],
		fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central", opts.SquareSize*4/5))
}

func drawDisc(canvas *svg.SVG, opts Options, sq board.Square, p board.Piece) {
	x, y := opts.origin(sq)
	half := opts.SquareSize / 2
	fill, stroke := "#ffffff", "#000000"
	if p.Color() == board.Black {
		fill, stroke = stroke, fill
	}
	canvas.Circle(x+half, y+half, opts.SquareSize*2/5,
		fmt.Sprintf("fill=%q", fill), fmt.Sprintf("stroke=%q", stroke),
		fmt.Sprintf(`stroke-width="%d"`, max(1, opts.SquareSize/30)))
}

func labelCoords(canvas *svg.SVG, opts Options) {
	style := fmt.Sprintf("font-size:%dpx;font-family:sans-serif", max(8, opts.SquareSize/5))
	pad := opts.SquareSize / 20
	for i := 0; i < 8; i++ {
		// Files along the bottom row, ranks along the left column.
		fileSq := board.NewSquare(i, 0)
		rankSq := board.NewSquare(0, i)
		if opts.Flip {
			fileSq = board.NewSquare(i, 7)
			rankSq = board.NewSquare(7, i)
		}
		x, y := opts.origin(fileSq)
		canvas.Text(x+opts.SquareSize-pad, y+opts.SquareSize-pad, string(rune('a'+i)), style+";text-anchor:end")
		x, y = opts.origin(rankSq)
		canvas.Text(x+pad, y+opts.SquareSize/4, string(rune('1'+i)), style)
	}
}

// errWriter keeps the first write error; svgo itself does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	if _, err := e.w.Write(p); err != nil {
		e.err = err
	}
	return len(p), nil
}

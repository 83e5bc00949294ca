package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/JusticeJJackson/ChessBot/internal/board"
)

// renderScale is the supersampling factor: the board is rasterized this many
// times larger and scaled down for smooth edges.
const renderScale = 3

var (
	labelFont     *opentype.Font
	labelFontErr  error
	labelFontOnce sync.Once
)

// PNG writes pos as a PNG image. The board and piece discs are rasterized
// from the SVG drawing; piece letters are drawn on top with the Go Bold font.
func PNG(w io.Writer, pos *board.Position, opts Options) error {
	img, err := Image(pos, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Image renders pos into an RGBA image of 8*SquareSize pixels a side.
func Image(pos *board.Position, opts Options) (*image.RGBA, error) {
	opts = opts.withDefaults()

	var buf bytes.Buffer
	drawSVG(&buf, pos, opts, false)
	icon, err := oksvg.ReadIconStream(&buf)
	if err != nil {
		return nil, fmt.Errorf("parse board svg: %w", err)
	}

	size := 8 * opts.SquareSize
	renderSize := size * renderScale
	icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))
	big := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	scanner := rasterx.NewScannerGV(renderSize, renderSize, big, big.Bounds())
	raster := rasterx.NewDasher(renderSize, renderSize, scanner)
	icon.Draw(raster, 1.0)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(img, img.Bounds(), big, big.Bounds(), draw.Src, nil)

	if err := drawLetters(img, pos, opts); err != nil {
		return nil, err
	}
	return img, nil
}

func drawLetters(img *image.RGBA, pos *board.Position, opts Options) error {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = opentype.Parse(gobold.TTF)
	})
	if labelFontErr != nil {
		return fmt.Errorf("load label font: %w", labelFontErr)
	}
	face, err := opentype.NewFace(labelFont, &opentype.FaceOptions{
		Size:    float64(opts.SquareSize) * 0.45,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("label face: %w", err)
	}
	defer face.Close()

	capHeight := face.Metrics().CapHeight.Ceil()
	d := &font.Drawer{Dst: img, Face: face}
	for sq := board.A1; sq <= board.H8; sq++ {
		p := pos.PieceAt(sq)
		if p == board.NoPiece {
			continue
		}
		letter := strings.ToUpper(p.String())
		ink := color.Black
		if p.Color() == board.Black {
			ink = color.White
		}
		x, y := opts.origin(sq)
		width := d.MeasureString(letter).Ceil()
		d.Src = image.NewUniform(ink)
		d.Dot = fixed.P(x+(opts.SquareSize-width)/2, y+(opts.SquareSize+capHeight)/2)
		d.DrawString(letter)
	}
	return nil
}

package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/isa-quest/internal/core"
)

// Cell size in pixels. The debug font is 6x16; the extra width spaces
// the glyphs out.
const (
	cellW = 8
	cellH = 16
)

var background = color.RGBA{0x10, 0x10, 0x18, 0xff}

// palette maps core colors to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {0xc0, 0xc0, 0xc0, 0xff},
	core.ColorGreen:        {0x00, 0xa0, 0x00, 0xff},
	core.ColorYellow:       {0xc0, 0xa0, 0x00, 0xff},
	core.ColorBlue:         {0x30, 0x50, 0xd0, 0xff},
	core.ColorCyan:         {0x00, 0xa0, 0xa0, 0xff},
	core.ColorWhite:        {0xd0, 0xd0, 0xd0, 0xff},
	core.ColorBrightGreen:  {0x40, 0xff, 0x40, 0xff},
	core.ColorBrightYellow: {0xff, 0xe0, 0x40, 0xff},
	core.ColorBrightCyan:   {0x40, 0xff, 0xff, 0xff},
	core.ColorBrightWhite:  {0xff, 0xff, 0xff, 0xff},
	core.ColorGray:         {0x80, 0x80, 0x80, 0xff},
}

func colorOf(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// shape is how a cell is painted.
type shape int

const (
	shapeNone  shape = iota // blank
	shapeGlyph              // debug font glyph
	shapeSolid              // full block
	shapeShade              // half-transparent block
	shapeLines              // box-drawing segments
	shapePound              // '£', which the debug font lacks
)

// box-drawing segments, as bit flags of the directions a line leaves the
// cell center.
const (
	segUp = 1 << iota
	segDown
	segLeft
	segRight
)

var boxSegments = map[rune]int{
	'─': segLeft | segRight,
	'│': segUp | segDown,
	'┌': segDown | segRight,
	'┐': segDown | segLeft,
	'└': segUp | segRight,
	'┘': segUp | segLeft,
}

// shapeOf classifies a cell rune.
func shapeOf(r rune) shape {
	switch {
	case r == ' ' || r == 0:
		return shapeNone
	case r == '█':
		return shapeSolid
	case r == '▒' || r == '░' || r == '▓':
		return shapeShade
	case r == '£':
		return shapePound
	case boxSegments[r] != 0:
		return shapeLines
	}
	return shapeGlyph
}

// painter draws screen cells, caching one white image per glyph and
// tinting it at draw time.
type painter struct {
	glyphs map[rune]*ebiten.Image
}

func newPainter() *painter {
	return &painter{glyphs: make(map[rune]*ebiten.Image)}
}

func (p *painter) glyph(r rune) *ebiten.Image {
	if img, ok := p.glyphs[r]; ok {
		return img
	}
	text := string(r)
	if r >= 0x7f {
		text = "?"
	}
	img := ebiten.NewImage(cellW, cellH)
	ebitenutil.DebugPrintAt(img, text, 1, 0)
	p.glyphs[r] = img
	return img
}

// paint draws every cell of s onto dst.
func (p *painter) paint(dst *ebiten.Image, s *core.Screen) {
	for y := range s.Height() {
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			p.paintCell(dst, float32(x*cellW), float32(y*cellH), cell)
		}
	}
}

func (p *painter) paintCell(dst *ebiten.Image, px, py float32, cell core.Cell) {
	clr := colorOf(cell.Color)

	switch shapeOf(cell.Rune) {
	case shapeNone:
	case shapeSolid:
		vector.DrawFilledRect(dst, px, py, cellW, cellH, clr, false)
	case shapeShade:
		shade := clr
		shade.A = 0x80
		vector.DrawFilledRect(dst, px, py, cellW, cellH, shade, false)
	case shapeLines:
		p.paintLines(dst, px, py, boxSegments[cell.Rune], clr)
	case shapePound:
		p.paintGlyph(dst, px, py, 'L', clr)
		vector.DrawFilledRect(dst, px+1, py+cellH/2, cellW-3, 1, clr, false)
	default:
		p.paintGlyph(dst, px, py, cell.Rune, clr)
	}
}

func (p *painter) paintGlyph(dst *ebiten.Image, px, py float32, r rune, clr color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(px), float64(py))
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(p.glyph(r), op)
}

func (p *painter) paintLines(dst *ebiten.Image, px, py float32, segs int, clr color.RGBA) {
	const thick = 2
	cx := px + cellW/2 - thick/2
	cy := py + cellH/2 - thick/2

	if segs&segUp != 0 {
		vector.DrawFilledRect(dst, cx, py, thick, cellH/2, clr, false)
	}
	if segs&segDown != 0 {
		vector.DrawFilledRect(dst, cx, cy, thick, cellH/2+thick/2, clr, false)
	}
	if segs&segLeft != 0 {
		vector.DrawFilledRect(dst, px, cy, cellW/2, thick, clr, false)
	}
	if segs&segRight != 0 {
		vector.DrawFilledRect(dst, cx, cy, cellW/2+thick/2, thick, clr, false)
	}
}

// Package glyphmetrics measures how much of a terminal cell each glyph
// covers with ink. Density scales should list glyphs in order of
// increasing coverage.
package glyphmetrics

import (
	"fmt"
	"image"
	"os"
	"sort"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	// CellWidth and CellHeight define the rendered cell size. The 1:2
	// ratio matches the usual terminal cell.
	CellWidth  = 8
	CellHeight = 16

	fontSize = 12
	dpi      = 72
)

// GlyphCoverage is the fraction of a cell covered by a glyph, 0 to 1.
type GlyphCoverage struct {
	Glyph    rune
	Coverage float64
}

// Rasterizer renders glyphs of one TrueType font into fixed-size cells.
type Rasterizer struct {
	font     *truetype.Font
	baseline int
}

// New parses a TrueType font.
func New(ttf []byte) (*Rasterizer, error) {
	f, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size:    fontSize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()

	return &Rasterizer{
		font:     f,
		baseline: ascent + (CellHeight-ascent-descent)/2,
	}, nil
}

// NewGoMono returns a Rasterizer for the Go Mono font.
func NewGoMono() (*Rasterizer, error) {
	return New(gomono.TTF)
}

// LoadFont reads and parses a TrueType font file.
func LoadFont(path string) (*Rasterizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(data)
}

// Render draws g into a CellWidth x CellHeight alpha mask.
func (r *Rasterizer) Render(g rune) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, CellWidth, CellHeight))

	ctx := freetype.NewContext()
	ctx.SetDPI(dpi)
	ctx.SetFont(r.font)
	ctx.SetFontSize(fontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	// Glyphs missing from the font draw nothing.
	_, _ = ctx.DrawString(string(g), freetype.Pt(0, r.baseline))
	return img
}

// Coverage returns the mean alpha of g over the cell.
func (r *Rasterizer) Coverage(g rune) float64 {
	img := r.Render(g)
	total := 0
	for _, a := range img.Pix {
		total += int(a)
	}
	return float64(total) / float64(len(img.Pix)*255)
}

// Measure returns the coverage of every glyph in charset, in order.
func (r *Rasterizer) Measure(charset string) []GlyphCoverage {
	var out []GlyphCoverage
	for _, g := range charset {
		out = append(out, GlyphCoverage{Glyph: g, Coverage: r.Coverage(g)})
	}
	return out
}

// SortByCoverage orders glyphs from sparse to dense. Glyphs with equal
// coverage keep their relative order.
func SortByCoverage(cs []GlyphCoverage) {
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].Coverage < cs[j].Coverage
	})
}

// Inversions returns the indices i where cs[i] covers less than cs[i-1].
// A correctly ordered density scale has none.
func Inversions(cs []GlyphCoverage) []int {
	var out []int
	for i := 1; i < len(cs); i++ {
		if cs[i].Coverage < cs[i-1].Coverage {
			out = append(out, i)
		}
	}
	return out
}

// Charset joins the glyphs back into a string.
func Charset(cs []GlyphCoverage) string {
	runes := make([]rune, len(cs))
	for i, c := range cs {
		runes[i] = c.Glyph
	}
	return string(runes)
}

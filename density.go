package img2ascii

import (
	"fmt"
	"unicode/utf8"
)

// DensityLevels is the number of glyphs in a density scale.
const DensityLevels = 10

// DensityScale orders glyphs from sparsest to densest ink. Dark cells map
// to sparse glyphs and bright cells to dense ones, which suits light text
// on a dark terminal background.
const DensityScale = " .:-=+*#%@"

// DensityBucket returns the index into a density scale for a brightness
// value: floor(brightness * 10 / 256), always within [0, 9].
func DensityBucket(brightness uint8) int {
	return int(brightness) * DensityLevels / 256
}

// DensityGlyph maps a brightness value onto DensityScale.
func DensityGlyph(brightness uint8) rune {
	return rune(DensityScale[DensityBucket(brightness)])
}

// DensityMapper is the standard-mode GlyphMapper.
type DensityMapper struct {
	scale [DensityLevels]rune
}

// NewDensityMapper returns a mapper over scale, which must hold exactly
// DensityLevels runes ordered sparse to dense. An empty scale selects
// DensityScale.
func NewDensityMapper(scale string) (*DensityMapper, error) {
	if scale == "" {
		scale = DensityScale
	}
	if n := utf8.RuneCountInString(scale); n != DensityLevels {
		return nil, fmt.Errorf("%w: need %d glyphs, got %d",
			ErrInvalidScale, DensityLevels, n)
	}
	m := &DensityMapper{}
	i := 0
	for _, r := range scale {
		m.scale[i] = r
		i++
	}
	return m, nil
}

// Glyph implements GlyphMapper.
func (m *DensityMapper) Glyph(_, _ int, s Sample) rune {
	return m.scale[DensityBucket(s.Brightness)]
}

package img2ascii

import "github.com/wbrown/img2ascii/imageutil"

// DefaultEdgeGlyph is drawn for every edge cell in edge mode.
const DefaultEdgeGlyph = '#'

// EdgeMask marks which cells of the sampled grid lie on an edge. Angles,
// when present, holds the gradient direction of each cell in radians.
type EdgeMask struct {
	Columns int
	Rows    int
	Edges   []bool
	Angles  []float64
}

// NewEdgeMask returns an empty mask of the given size.
func NewEdgeMask(columns, rows int) *EdgeMask {
	return &EdgeMask{
		Columns: columns,
		Rows:    rows,
		Edges:   make([]bool, columns*rows),
	}
}

// EdgeMaskFromImage converts a binary edge image (non-zero = edge) and an
// optional per-pixel gradient direction grid into an EdgeMask.
func EdgeMaskFromImage(edges *imageutil.GrayImage, direction [][]float64) *EdgeMask {
	mask := NewEdgeMask(edges.Width(), edges.Height())
	if direction != nil {
		mask.Angles = make([]float64, len(mask.Edges))
	}
	for y := 0; y < mask.Rows; y++ {
		for x := 0; x < mask.Columns; x++ {
			i := y*mask.Columns + x
			mask.Edges[i] = edges.GetGray(x, y) != 0
			if direction != nil {
				mask.Angles[i] = direction[y][x]
			}
		}
	}
	return mask
}

// IsEdge reports whether the cell at (col, row) is an edge.
func (m *EdgeMask) IsEdge(col, row int) bool {
	return m.Edges[row*m.Columns+col]
}

// Angle returns the gradient direction at (col, row) and whether the mask
// carries direction data.
func (m *EdgeMask) Angle(col, row int) (float64, bool) {
	if m.Angles == nil {
		return 0, false
	}
	return m.Angles[row*m.Columns+col], true
}

// ContourMapper is the edge-mode GlyphMapper. Cells off the mask are
// blank; cells on it get EdgeGlyph, or with Oriented set, a line glyph
// following the edge.
type ContourMapper struct {
	Mask      *EdgeMask
	EdgeGlyph rune
	Oriented  bool
}

// Glyph implements GlyphMapper.
func (m *ContourMapper) Glyph(col, row int, _ Sample) rune {
	if !m.Mask.IsEdge(col, row) {
		return ' '
	}
	if m.Oriented {
		if angle, ok := m.Mask.Angle(col, row); ok {
			return OrientedGlyph(angle)
		}
	}
	if m.EdgeGlyph == 0 {
		return DefaultEdgeGlyph
	}
	return m.EdgeGlyph
}

// Dimensions returns the size of the underlying mask.
func (m *ContourMapper) Dimensions() (columns, rows int) {
	if m.Mask == nil {
		return 0, 0
	}
	return m.Mask.Columns, m.Mask.Rows
}

// OrientedGlyph picks a line glyph running perpendicular to a gradient
// direction given in image coordinates (y grows downward).
func OrientedGlyph(angle float64) rune {
	switch imageutil.QuantizeDirection(angle) {
	case 0:
		return '|'
	case 45:
		return '/'
	case 90:
		return '-'
	default:
		return '\\'
	}
}

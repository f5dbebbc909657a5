package img2ascii

import "fmt"

// GlyphMapper chooses the character drawn in one cell.
type GlyphMapper interface {
	Glyph(col, row int, s Sample) rune
}

// GlyphFunc adapts a plain function to GlyphMapper.
type GlyphFunc func(col, row int, s Sample) rune

// Glyph implements GlyphMapper.
func (fn GlyphFunc) Glyph(col, row int, s Sample) rune {
	return fn(col, row, s)
}

// dimensioned is implemented by mappers that carry their own grid, such as
// ContourMapper. Their size must match the samples being assembled.
type dimensioned interface {
	Dimensions() (columns, rows int)
}

// Cell is one character of output: a glyph drawn in an ANSI color.
type Cell struct {
	Glyph rune
	Color AnsiColor
}

// Frame is the assembled output, one slice of cells per row.
type Frame [][]Cell

// Rows returns the number of rows in the frame.
func (fr Frame) Rows() int {
	return len(fr)
}

// Columns returns the number of cells per row.
func (fr Frame) Columns() int {
	if len(fr) == 0 {
		return 0
	}
	return len(fr[0])
}

// Assemble walks samples in row-major order and builds one Cell per
// sample, taking the glyph from mapper and the color from the palette. A
// nil palette selects DefaultPalette.
func Assemble(samples Samples, mapper GlyphMapper, palette *Palette) (Frame, error) {
	if len(samples.Cells) != samples.Columns*samples.Rows {
		return nil, fmt.Errorf("%w: %d samples for a %dx%d grid",
			ErrInvariantViolation, len(samples.Cells), samples.Columns, samples.Rows)
	}
	if d, ok := mapper.(dimensioned); ok {
		cols, rows := d.Dimensions()
		if cols != samples.Columns || rows != samples.Rows {
			return nil, fmt.Errorf("%w: glyph grid is %dx%d, samples are %dx%d",
				ErrInvariantViolation, cols, rows, samples.Columns, samples.Rows)
		}
	}
	if palette == nil {
		palette = &DefaultPalette
	}

	frame := make(Frame, samples.Rows)
	for row := range frame {
		cells := make([]Cell, samples.Columns)
		for col := range cells {
			s := samples.At(col, row)
			cells[col] = Cell{
				Glyph: mapper.Glyph(col, row, s),
				Color: palette.Nearest(s.Color),
			}
		}
		frame[row] = cells
	}
	return frame, nil
}

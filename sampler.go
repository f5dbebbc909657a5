package img2ascii

import (
	"fmt"
	"math"

	"github.com/wbrown/img2ascii/imageutil"
)

// DefaultAspectRatio is the height-to-width ratio of a terminal cell.
const DefaultAspectRatio = 2.0

// MaxCells bounds columns*rows of a sampled grid. Larger requests fail
// with ErrInvalidDimension before anything is allocated.
const MaxCells = 1 << 22

// SampleMethod selects how a source region is reduced to one cell.
type SampleMethod int

const (
	// SampleBlockAverage averages every source pixel covered by the cell.
	SampleBlockAverage SampleMethod = iota
	// SampleNearest takes the source pixel at the center of the cell.
	SampleNearest
	// SampleInterpolated resizes the image with Catmull-Rom filtering.
	SampleInterpolated
)

// Sample is the representative color of one output cell together with its
// BT.601 brightness.
type Sample struct {
	Color      RGB
	Brightness uint8
}

func newSample(c RGB) Sample {
	return Sample{Color: c, Brightness: c.Luminance()}
}

// Samples is the row-major grid of cell samples produced by the Sampler.
type Samples struct {
	Columns int
	Rows    int
	Cells   []Sample
}

// At returns the sample for the cell at (col, row).
func (s Samples) At(col, row int) Sample {
	return s.Cells[row*s.Columns+col]
}

// Gray returns the sample brightness as a grayscale image with one pixel
// per cell, the input expected by an EdgeDetector.
func (s Samples) Gray() *imageutil.GrayImage {
	gray := imageutil.NewGrayImage(s.Columns, s.Rows)
	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Columns; col++ {
			gray.SetGrayValue(col, row, s.At(col, row).Brightness)
		}
	}
	return gray
}

// GridSize computes the output grid for a width x height source rendered
// at the given number of columns:
//
//	rows = max(1, round(columns * height / width / aspectRatio))
//
// Grids of more than MaxCells cells are rejected.
func GridSize(width, height, columns int, aspectRatio float64) (int, int, error) {
	if columns < 1 {
		return 0, 0, fmt.Errorf("%w: width must be at least 1, got %d",
			ErrInvalidDimension, columns)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: source image is %dx%d",
			ErrInvalidDimension, width, height)
	}
	if !(aspectRatio > 0) || math.IsInf(aspectRatio, 0) {
		return 0, 0, fmt.Errorf("%w: aspect ratio must be positive, got %v",
			ErrInvalidDimension, aspectRatio)
	}
	rows := max(math.Round(float64(columns)*float64(height)/float64(width)/aspectRatio), 1)
	if float64(columns)*rows > MaxCells {
		return 0, 0, fmt.Errorf("%w: %d columns on a %dx%d image exceeds %d cells",
			ErrInvalidDimension, columns, width, height, MaxCells)
	}
	return columns, int(rows), nil
}

// SampleGrid reduces grid to columns cells per row using block averaging.
func SampleGrid(grid PixelGrid, columns int, aspectRatio float64) (Samples, error) {
	return SampleWith(grid, columns, aspectRatio, SampleBlockAverage)
}

// SampleWith reduces grid to columns cells per row using method. The number
// of rows is derived by GridSize and is never less than one.
func SampleWith(grid PixelGrid, columns int, aspectRatio float64, method SampleMethod) (Samples, error) {
	cols, rows, err := GridSize(grid.Width(), grid.Height(), columns, aspectRatio)
	if err != nil {
		return Samples{}, err
	}

	out := Samples{
		Columns: cols,
		Rows:    rows,
		Cells:   make([]Sample, 0, cols*rows),
	}

	if method == SampleInterpolated {
		resized := imageutil.Resize(grid.img, cols, rows, imageutil.InterpolationArea)
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				out.Cells = append(out.Cells, newSample(resized.GetRGB(col, row)))
			}
		}
		return out, nil
	}

	width, height := grid.Width(), grid.Height()
	for row := 0; row < rows; row++ {
		y0, y1 := span(row, rows, height)
		for col := 0; col < cols; col++ {
			x0, x1 := span(col, cols, width)
			var c RGB
			if method == SampleNearest {
				c = grid.At((x0+x1-1)/2, (y0+y1-1)/2)
			} else {
				c = blockAverage(grid, x0, y0, x1, y1)
			}
			out.Cells = append(out.Cells, newSample(c))
		}
	}
	return out, nil
}

// span returns the half-open source range [start, end) covered by cell i
// of n when spread over size source pixels. Ranges are never empty.
func span(i, n, size int) (int, int) {
	start := i * size / n
	end := (i + 1) * size / n
	if start > size-1 {
		start = size - 1
	}
	if end <= start {
		end = start + 1
	}
	return start, end
}

func blockAverage(grid PixelGrid, x0, y0, x1, y1 int) RGB {
	var r, g, b, n int
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c := grid.At(x, y)
			r += int(c.R)
			g += int(c.G)
			b += int(c.B)
			n++
		}
	}
	return RGB{
		R: uint8((r + n/2) / n),
		G: uint8((g + n/2) / n),
		B: uint8((b + n/2) / n),
	}
}

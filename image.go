package img2ascii

import (
	"image"
	"io"

	"github.com/wbrown/img2ascii/imageutil"
)

// RGB is an 8-bit per channel color.
type RGB = imageutil.RGB

// PixelGrid is a read-only view of a decoded image with its origin at
// (0, 0). The zero value is an empty grid.
type PixelGrid struct {
	img *imageutil.RGBAImage
}

// NewPixelGrid wraps any image as a PixelGrid. The pipeline only reads
// from the grid; callers must not modify img while it is in use.
func NewPixelGrid(img image.Image) PixelGrid {
	if img == nil {
		return PixelGrid{}
	}
	return PixelGrid{img: imageutil.RGBAImageFromImage(img)}
}

// DecodeImage decodes PNG, JPEG and the other registered formats from r.
// Corrupt or unsupported data returns an error wrapping ErrDecode.
func DecodeImage(r io.Reader) (PixelGrid, error) {
	img, err := imageutil.Decode(r)
	if err != nil {
		return PixelGrid{}, err
	}
	return PixelGrid{img: img}, nil
}

// LoadImage opens and decodes the image at path. A missing file returns an
// error matching fs.ErrNotExist.
func LoadImage(path string) (PixelGrid, error) {
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return PixelGrid{}, err
	}
	return PixelGrid{img: img}, nil
}

// Width returns the grid width in pixels.
func (g PixelGrid) Width() int {
	if g.img == nil {
		return 0
	}
	return g.img.Width()
}

// Height returns the grid height in pixels.
func (g PixelGrid) Height() int {
	if g.img == nil {
		return 0
	}
	return g.img.Height()
}

// At returns the color at (x, y).
func (g PixelGrid) At(x, y int) RGB {
	return g.img.GetRGB(x, y)
}

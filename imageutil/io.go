package imageutil

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// ErrDecode is returned when image bytes are corrupt or in a format no
// registered decoder understands.
var ErrDecode = errors.New("failed to decode image")

// Decode reads an image from r and converts it to an RGBAImage. JPEG
// images are rotated according to their EXIF orientation tag.
// Supports PNG, JPEG, GIF, BMP, TIFF and WebP.
func Decode(r io.Reader) (*RGBAImage, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return RGBAImageFromImage(img), nil
}

// LoadImage loads an image from the specified path. A missing file yields
// an error matching fs.ErrNotExist.
func LoadImage(path string) (*RGBAImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// SavePNG saves an image as PNG to the specified path. It is used to
// produce fixtures for tests and tools.
func SavePNG(img image.Image, path string) error {
	return imaging.Save(img, path)
}

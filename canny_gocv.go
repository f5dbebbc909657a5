//go:build gocv

package img2ascii

import (
	"image"

	"github.com/wbrown/img2ascii/imageutil"
	"gocv.io/x/gocv"
)

// GoCVDetector runs OpenCV's Canny through gocv. It requires OpenCV and
// is only built with -tags gocv. Its masks carry no gradient directions,
// so oriented contours fall back to the edge glyph.
type GoCVDetector struct{}

// DetectEdges implements EdgeDetector.
func (GoCVDetector) DetectEdges(gray *imageutil.GrayImage, low, high float64) (*EdgeMask, error) {
	src := grayToMat(gray)
	defer src.Close()

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(src, &blurred, image.Point{X: 5, Y: 5}, 1.4, 1.4, gocv.BorderReplicate)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(blurred, &edges, float32(low), float32(high))

	return EdgeMaskFromImage(matToGray(edges), nil), nil
}

// grayToMat converts a GrayImage to a single channel gocv.Mat.
func grayToMat(img *imageutil.GrayImage) gocv.Mat {
	mat := gocv.NewMatWithSize(img.Height(), img.Width(), gocv.MatTypeCV8U)
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			mat.SetUCharAt(y, x, img.GetGray(x, y))
		}
	}
	return mat
}

// matToGray converts a single channel gocv.Mat to a GrayImage.
func matToGray(mat gocv.Mat) *imageutil.GrayImage {
	img := imageutil.NewGrayImage(mat.Cols(), mat.Rows())
	for y := 0; y < mat.Rows(); y++ {
		for x := 0; x < mat.Cols(); x++ {
			img.SetGrayValue(x, y, mat.GetUCharAt(y, x))
		}
	}
	return img
}

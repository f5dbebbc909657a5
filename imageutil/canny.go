package imageutil

import "math"

// EdgeMap is the result of Canny edge detection: a binary edge image
// (255 = edge, 0 = background) together with the gradient direction of
// every pixel in radians, as returned by math.Atan2(gy, gx).
type EdgeMap struct {
	Edges     *GrayImage
	Direction [][]float64
}

// Canny performs Canny edge detection on a grayscale image.
// lowThreshold and highThreshold control edge sensitivity.
func Canny(gray *GrayImage, lowThreshold, highThreshold float64) *GrayImage {
	return CannyWithDirection(gray, lowThreshold, highThreshold).Edges
}

// CannyWithDirection runs the full Canny pipeline (Gaussian blur, Sobel
// gradients, non-maximum suppression, double threshold, hysteresis) and
// keeps the gradient direction so callers can orient edge glyphs.
//
// Pixels on the outermost border are never marked as edges.
func CannyWithDirection(gray *GrayImage, lowThreshold, highThreshold float64) EdgeMap {
	width, height := gray.Width(), gray.Height()

	blurred := GaussianBlurGray(gray)
	gx, gy := sobelGradients(blurred)

	magnitude := make([][]float64, height)
	direction := make([][]float64, height)
	for y := 0; y < height; y++ {
		magnitude[y] = make([]float64, width)
		direction[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			magnitude[y][x] = math.Hypot(gx[y][x], gy[y][x])
			direction[y][x] = math.Atan2(gy[y][x], gx[y][x])
		}
	}

	suppressed := nonMaxSuppression(magnitude, direction, width, height)
	strong, weak := doubleThreshold(suppressed, lowThreshold, highThreshold, width, height)

	return EdgeMap{
		Edges:     hysteresis(strong, weak, width, height),
		Direction: direction,
	}
}

func sobelGradients(img *GrayImage) (gx, gy [][]float64) {
	kx, ky := sobelKernels()
	gray := grayToFloat(img)
	return ConvolveGrayFloat(gray, kx), ConvolveGrayFloat(gray, ky)
}

// nonMaxSuppression keeps only pixels that are local maxima along the
// gradient direction.
func nonMaxSuppression(magnitude, direction [][]float64, width, height int) [][]float64 {
	suppressed := make([][]float64, height)
	for y := 0; y < height; y++ {
		suppressed[y] = make([]float64, width)
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			mag := magnitude[y][x]

			var q, r float64
			switch QuantizeDirection(direction[y][x]) {
			case 0:
				q = magnitude[y][x+1]
				r = magnitude[y][x-1]
			case 45:
				q = magnitude[y+1][x+1]
				r = magnitude[y-1][x-1]
			case 90:
				q = magnitude[y+1][x]
				r = magnitude[y-1][x]
			default:
				q = magnitude[y+1][x-1]
				r = magnitude[y-1][x+1]
			}

			if mag >= q && mag >= r {
				suppressed[y][x] = mag
			}
		}
	}

	return suppressed
}

// QuantizeDirection folds a gradient angle in radians onto one of the four
// Canny sectors and returns it in degrees: 0, 45, 90 or 135.
func QuantizeDirection(angle float64) int {
	deg := angle * 180.0 / math.Pi
	if deg < 0 {
		deg += 180
	}
	switch {
	case deg < 22.5 || deg >= 157.5:
		return 0
	case deg < 67.5:
		return 45
	case deg < 112.5:
		return 90
	default:
		return 135
	}
}

// doubleThreshold classifies edges as strong or weak based on thresholds.
func doubleThreshold(suppressed [][]float64, low, high float64, width, height int) (strong, weak [][]bool) {
	strong = make([][]bool, height)
	weak = make([][]bool, height)

	for y := 0; y < height; y++ {
		strong[y] = make([]bool, width)
		weak[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			val := suppressed[y][x]
			if val >= high {
				strong[y][x] = true
			} else if val >= low {
				weak[y][x] = true
			}
		}
	}

	return strong, weak
}

// hysteresis keeps weak edges only if they are 8-connected to a strong
// edge, repeating until the edge set stops growing.
func hysteresis(strong, weak [][]bool, width, height int) *GrayImage {
	edges := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if strong[y][x] {
				edges.SetGrayValue(x, y, 255)
			}
		}
	}

	changed := true
	for changed {
		changed = false
		for y := 1; y < height-1; y++ {
			for x := 1; x < width-1; x++ {
				if !weak[y][x] || edges.GetGray(x, y) != 0 {
					continue
				}
				if hasEdgeNeighbor(edges, x, y) {
					edges.SetGrayValue(x, y, 255)
					changed = true
				}
			}
		}
	}

	return edges
}

func hasEdgeNeighbor(edges *GrayImage, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if edges.GetGray(x+dx, y+dy) == 255 {
				return true
			}
		}
	}
	return false
}

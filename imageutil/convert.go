package imageutil

// ToGrayscale converts an RGBA image to grayscale using the BT.601
// luminance formula: Y = 0.299*R + 0.587*G + 0.114*B
func ToGrayscale(img *RGBAImage) *GrayImage {
	width, height := img.Width(), img.Height()
	gray := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gray.SetGrayValue(x, y, img.GetRGB(x, y).Luminance())
		}
	}

	return gray
}

// grayToFloat copies a grayscale image into a row-major float grid.
func grayToFloat(img *GrayImage) [][]float64 {
	width, height := img.Width(), img.Height()
	out := make([][]float64, height)
	for y := 0; y < height; y++ {
		out[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			out[y][x] = float64(img.GetGray(x, y))
		}
	}
	return out
}

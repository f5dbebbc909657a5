package img2ascii

import (
	"fmt"
	"math"

	"github.com/wbrown/img2ascii/imageutil"
)

// Canny thresholds used in edge mode.
const (
	DefaultLowThreshold  = 50.0
	DefaultHighThreshold = 100.0
)

// EdgeDetector extracts a binary edge mask from a grayscale grid. The
// returned mask must have the same dimensions as gray.
type EdgeDetector interface {
	DetectEdges(gray *imageutil.GrayImage, low, high float64) (*EdgeMask, error)
}

// CannyDetector is the pure Go Canny implementation from imageutil. Its
// masks carry gradient directions.
type CannyDetector struct{}

// DetectEdges implements EdgeDetector.
func (CannyDetector) DetectEdges(gray *imageutil.GrayImage, low, high float64) (*EdgeMask, error) {
	result := imageutil.CannyWithDirection(gray, low, high)
	return EdgeMaskFromImage(result.Edges, result.Direction), nil
}

// ValidateThresholds checks a pair of Canny thresholds.
func ValidateThresholds(low, high float64) error {
	switch {
	case math.IsNaN(low) || math.IsNaN(high):
		return fmt.Errorf("%w: thresholds must be numbers", ErrInvalidThreshold)
	case low < 0:
		return fmt.Errorf("%w: low threshold %v is negative", ErrInvalidThreshold, low)
	case high < low:
		return fmt.Errorf("%w: high threshold %v is below low threshold %v",
			ErrInvalidThreshold, high, low)
	}
	return nil
}

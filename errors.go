package img2ascii

import (
	"errors"

	"github.com/wbrown/img2ascii/imageutil"
)

var (
	// ErrInvalidDimension is returned when the requested width is less than
	// one, the aspect ratio is not positive, or the source image has no area.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrDecode is returned when image bytes are unreadable or the format
	// is not supported. It is the same value as imageutil.ErrDecode.
	ErrDecode = imageutil.ErrDecode

	// ErrUnsupportedMode is returned by ParseMode for unknown mode names.
	ErrUnsupportedMode = errors.New("unsupported mode")

	// ErrInvariantViolation reports a wiring defect inside the pipeline,
	// such as an edge mask whose size differs from the sampled grid.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrInvalidThreshold is returned for edge detection thresholds that
	// are negative or where high < low.
	ErrInvalidThreshold = errors.New("invalid edge threshold")

	// ErrInvalidScale is returned for density scales that do not hold
	// exactly DensityLevels glyphs.
	ErrInvalidScale = errors.New("invalid density scale")

	// ErrInvalidPalette is returned when palette data is malformed or
	// missing one of the 16 colors.
	ErrInvalidPalette = errors.New("invalid palette")
)

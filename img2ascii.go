// Package img2ascii converts raster images into colorized ASCII art for
// display in a terminal.
//
// The pipeline is a chain of small pure stages:
//
//	PixelGrid -> Sample -> {DensityMapper | ContourMapper} -> Assemble -> WriteANSI
//	                    \-> Palette.Nearest ------------------^
//
// The Sampler reduces the source image to one representative color per
// output cell, correcting for terminal cells being roughly twice as tall as
// they are wide. A GlyphMapper picks the character for each cell, either by
// brightness (standard mode) or from a Canny edge mask (edge mode), and the
// color quantizer snaps the cell color to the nearest of 16 ANSI colors.
package img2ascii

import (
	"fmt"
	"strings"
)

const (
	ESC = "\u001b"
)

// Mode selects how glyphs are chosen for each cell.
type Mode int

const (
	// ModeStandard maps cell brightness onto the density scale.
	ModeStandard Mode = iota
	// ModeEdge draws only the contours found by edge detection.
	ModeEdge
)

// String returns the name of the mode as accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "standard"
	case ModeEdge:
		return "edge"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses a rendering mode name. Names are case-insensitive;
// anything other than "standard" or "edge" returns ErrUnsupportedMode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard":
		return ModeStandard, nil
	case "edge":
		return ModeEdge, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, name)
}

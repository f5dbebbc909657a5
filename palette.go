package img2ascii

import (
	"embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

//go:embed colordata/ansi16.json
var f embed.FS

// AnsiColor is one of the 16 standard terminal colors. The numeric order
// is canonical and breaks ties in Palette.Nearest.
type AnsiColor int

const (
	Black AnsiColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// PaletteSize is the number of colors in a Palette.
const PaletteSize = 16

var colorNames = [PaletteSize]string{
	"black", "red", "green", "yellow",
	"blue", "magenta", "cyan", "white",
	"bright black", "bright red", "bright green", "bright yellow",
	"bright blue", "bright magenta", "bright cyan", "bright white",
}

// String returns the conventional name of the color.
func (c AnsiColor) String() string {
	if c < 0 || int(c) >= PaletteSize {
		return fmt.Sprintf("AnsiColor(%d)", int(c))
	}
	return colorNames[c]
}

// FG returns the SGR foreground code: 30-37 for the standard colors and
// 90-97 for the bright ones.
func (c AnsiColor) FG() int {
	if c >= BrightBlack {
		return 90 + int(c-BrightBlack)
	}
	return 30 + int(c)
}

// colorFromFG is the inverse of FG.
func colorFromFG(code int) (AnsiColor, bool) {
	switch {
	case code >= 30 && code <= 37:
		return AnsiColor(code - 30), true
	case code >= 90 && code <= 97:
		return BrightBlack + AnsiColor(code-90), true
	}
	return 0, false
}

// Palette holds the reference RGB value of each AnsiColor, indexed by the
// color. It is a value type; copies never alias.
type Palette [PaletteSize]RGB

// DefaultPalette is the embedded 16-color palette.
var DefaultPalette = mustParsePalette("ansi16")

func mustParsePalette(name string) Palette {
	data, err := f.ReadFile(fmt.Sprintf("colordata/%s.json", name))
	if err != nil {
		panic(err)
	}
	p, err := ParsePalette(data)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePalette reads a JSON object mapping foreground SGR codes ("30" to
// "37" and "90" to "97") to hex colors ("#rrggbb"). All 16 codes must be
// present exactly once; other keys, and keys naming the same code twice
// such as "30" and "030", are rejected.
func ParsePalette(data []byte) (Palette, error) {
	var colorMap map[string]string
	if err := json.Unmarshal(data, &colorMap); err != nil {
		return Palette{}, fmt.Errorf("%w: %v", ErrInvalidPalette, err)
	}

	var p Palette
	var seen [PaletteSize]bool
	for code, hexColor := range colorMap {
		n, err := strconv.Atoi(code)
		if err != nil {
			return Palette{}, fmt.Errorf("%w: bad color code %q", ErrInvalidPalette, code)
		}
		c, ok := colorFromFG(n)
		if !ok {
			return Palette{}, fmt.Errorf("%w: unknown color code %q", ErrInvalidPalette, code)
		}
		if seen[c] {
			return Palette{}, fmt.Errorf("%w: duplicate entry for code %d (%q)",
				ErrInvalidPalette, c.FG(), code)
		}
		hexColor = strings.TrimPrefix(hexColor, "#")
		v, err := strconv.ParseUint(hexColor, 16, 32)
		if err != nil || len(hexColor) != 6 {
			return Palette{}, fmt.Errorf("%w: bad color %q for code %s",
				ErrInvalidPalette, hexColor, code)
		}
		p[c] = RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
		seen[c] = true
	}
	for c, ok := range seen {
		if !ok {
			return Palette{}, fmt.Errorf("%w: missing %s (code %d)",
				ErrInvalidPalette, AnsiColor(c), AnsiColor(c).FG())
		}
	}
	return p, nil
}

// LoadPalette reads a palette file in the format accepted by ParsePalette.
func LoadPalette(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("error reading palette: %w", err)
	}
	return ParsePalette(data)
}

// distance returns the squared Euclidean distance between two colors in
// RGB space.
func distance(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// Nearest returns the palette color closest to c. When several colors are
// equally close the one with the lowest AnsiColor value wins.
func (p *Palette) Nearest(c RGB) AnsiColor {
	best := Black
	bestDist := math.MaxInt
	for i, ref := range p {
		if d := distance(c, ref); d < bestDist {
			best, bestDist = AnsiColor(i), d
		}
	}
	return best
}

// RGB returns the reference color of c in the palette.
func (p *Palette) RGB(c AnsiColor) RGB {
	return p[c]
}

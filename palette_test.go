package img2ascii

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPalette(t *testing.T) {
	want := Palette{
		{R: 0, G: 0, B: 0}, {R: 128, G: 0, B: 0}, {R: 0, G: 128, B: 0}, {R: 128, G: 128, B: 0},
		{R: 0, G: 0, B: 128}, {R: 128, G: 0, B: 128}, {R: 0, G: 128, B: 128}, {R: 192, G: 192, B: 192},
		{R: 128, G: 128, B: 128}, {R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 0}, {R: 255, G: 255, B: 0},
		{R: 0, G: 0, B: 255}, {R: 255, G: 0, B: 255}, {R: 0, G: 255, B: 255}, {R: 255, G: 255, B: 255},
	}
	for c := Black; c <= BrightWhite; c++ {
		if got := DefaultPalette.RGB(c); got != want[c] {
			t.Errorf("%s: got %v, want %v", c, got, want[c])
		}
	}
}

func TestNearestExact(t *testing.T) {
	for c := Black; c <= BrightWhite; c++ {
		if got := DefaultPalette.Nearest(DefaultPalette[c]); got != c {
			t.Errorf("palette color %s mapped to %s", c, got)
		}
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		name  string
		color RGB
		want  AnsiColor
	}{
		{"mid gray", RGB{R: 127, G: 127, B: 127}, BrightBlack},
		{"near white", RGB{R: 250, G: 250, B: 250}, BrightWhite},
		{"dark red", RGB{R: 130, G: 0, B: 0}, Red},
		{"pure red", RGB{R: 255, G: 0, B: 0}, BrightRed},
		{"tie black red", RGB{R: 64, G: 0, B: 0}, Black},
		{"tie black green", RGB{R: 0, G: 64, B: 0}, Black},
		{"tie white bright black", RGB{R: 160, G: 160, B: 160}, White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultPalette.Nearest(tt.color); got != tt.want {
				t.Errorf("Nearest(%v) = %s, want %s", tt.color, got, tt.want)
			}
			if again := DefaultPalette.Nearest(tt.color); again != tt.want {
				t.Errorf("Nearest(%v) not stable: %s", tt.color, again)
			}
		})
	}
}

// Every color maps to an in-range palette entry that no other entry beats.
func TestNearestIsMinimal(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				c := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				got := DefaultPalette.Nearest(c)
				if got < Black || got > BrightWhite {
					t.Fatalf("Nearest(%v) out of range: %d", c, got)
				}
				d := distance(c, DefaultPalette[got])
				for i, ref := range DefaultPalette {
					other := distance(c, ref)
					if other < d || (other == d && AnsiColor(i) < got) {
						t.Fatalf("Nearest(%v) = %s, but %s is at least as close",
							c, got, AnsiColor(i))
					}
				}
			}
		}
	}
}

func TestAnsiColorCodes(t *testing.T) {
	tests := []struct {
		color AnsiColor
		fg    int
		name  string
	}{
		{Black, 30, "black"},
		{White, 37, "white"},
		{BrightBlack, 90, "bright black"},
		{BrightWhite, 97, "bright white"},
	}
	for _, tt := range tests {
		if got := tt.color.FG(); got != tt.fg {
			t.Errorf("%s.FG() = %d, want %d", tt.name, got, tt.fg)
		}
		if got := tt.color.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if back, ok := colorFromFG(tt.fg); !ok || back != tt.color {
			t.Errorf("colorFromFG(%d) = %v, %v", tt.fg, back, ok)
		}
	}
	if got := AnsiColor(42).String(); got != "AnsiColor(42)" {
		t.Errorf("out of range String() = %q", got)
	}
}

func TestParsePaletteErrors(t *testing.T) {
	full := func(override map[string]string) string {
		s := "{"
		first := true
		for _, code := range []string{"30", "31", "32", "33", "34", "35", "36", "37",
			"90", "91", "92", "93", "94", "95", "96", "97"} {
			v := "#000000"
			if o, ok := override[code]; ok {
				if o == "" {
					continue
				}
				v = o
			}
			if !first {
				s += ","
			}
			s += `"` + code + `":"` + v + `"`
			first = false
		}
		return s + "}"
	}

	if _, err := ParsePalette([]byte(full(nil))); err != nil {
		t.Fatalf("complete palette rejected: %v", err)
	}

	tests := []struct {
		name string
		data string
	}{
		{"not json", "{"},
		{"missing entry", full(map[string]string{"97": ""})},
		{"bad hex", full(map[string]string{"31": "#zz0000"})},
		{"short hex", full(map[string]string{"31": "#fff"})},
		{"unknown code", `{"38":"#000000"}`},
		{"non numeric code", `{"red":"#ff0000"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePalette([]byte(tt.data)); !errors.Is(err, ErrInvalidPalette) {
				t.Errorf("expected ErrInvalidPalette, got %v", err)
			}
		})
	}
}

// Two spellings of one code must fail every time rather than letting map
// order pick the winner.
func TestParsePaletteDuplicateCode(t *testing.T) {
	data, err := f.ReadFile("colordata/ansi16.json")
	if err != nil {
		t.Fatal(err)
	}
	dup := bytes.Replace(data, []byte("{"), []byte(`{"030": "#ffffff",`), 1)
	for i := 0; i < 20; i++ {
		if _, err := ParsePalette(dup); !errors.Is(err, ErrInvalidPalette) {
			t.Fatalf("attempt %d: expected ErrInvalidPalette, got %v", i, err)
		}
	}
}

func TestLoadPalette(t *testing.T) {
	data, err := f.ReadFile("colordata/ansi16.json")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "palette.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadPalette(path)
	if err != nil {
		t.Fatal(err)
	}
	if p != DefaultPalette {
		t.Error("loaded palette differs from embedded default")
	}

	if _, err := LoadPalette(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

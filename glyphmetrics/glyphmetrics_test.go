package glyphmetrics

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func TestCoverageGoMono(t *testing.T) {
	r, err := NewGoMono()
	if err != nil {
		t.Fatal(err)
	}

	if c := r.Coverage(' '); c != 0 {
		t.Errorf("space should have no ink, got %.3f", c)
	}
	if c := r.Coverage('.'); c <= 0 {
		t.Errorf("period should have some ink, got %.3f", c)
	}

	tests := []struct{ sparse, dense rune }{
		{'.', '@'},
		{'-', '#'},
		{':', '%'},
	}
	for _, tt := range tests {
		if r.Coverage(tt.sparse) >= r.Coverage(tt.dense) {
			t.Errorf("%q should cover less than %q", tt.sparse, tt.dense)
		}
	}
}

func TestRenderSize(t *testing.T) {
	r, err := NewGoMono()
	if err != nil {
		t.Fatal(err)
	}
	img := r.Render('M')
	if b := img.Bounds(); b.Dx() != CellWidth || b.Dy() != CellHeight {
		t.Errorf("unexpected cell size %v", b)
	}
}

func TestSortByCoverage(t *testing.T) {
	cs := []GlyphCoverage{
		{'#', 0.4},
		{' ', 0},
		{'a', 0.2},
		{'b', 0.2},
		{'.', 0.05},
	}
	SortByCoverage(cs)
	if got := Charset(cs); got != " .ab#" {
		t.Errorf("got %q, want %q", got, " .ab#")
	}
	if inv := Inversions(cs); len(inv) != 0 {
		t.Errorf("sorted set has inversions %v", inv)
	}
}

func TestInversions(t *testing.T) {
	cs := []GlyphCoverage{{'a', 0.1}, {'b', 0.3}, {'c', 0.2}, {'d', 0.5}, {'e', 0.1}}
	if got, want := Inversions(cs), []int{2, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("Inversions() = %v, want %v", got, want)
	}
}

func TestLoadFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gomono.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFont(path); err != nil {
		t.Errorf("LoadFont: %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(bad, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFont(bad); err == nil {
		t.Error("expected an error for invalid font data")
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
)

func init() {
	detect = func() (int, int, bool) { return 0, 0, false }
}

func writeSampleImage(t *testing.T) string {
	t.Helper()
	img := imageutil.NewRGBAImage(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGB(x, y, imageutil.RGB{R: uint8(x * 40), G: uint8(y * 60), B: 150})
		}
	}
	path := filepath.Join(t.TempDir(), "sample.png")
	if err := imageutil.SavePNG(img, path); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestHelpListsWidth(t *testing.T) {
	code, stdout, _ := runCLI("--help")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	for _, flag := range []string{"--width", "--mode", "--version"} {
		if !strings.Contains(stdout, flag) {
			t.Errorf("help does not mention %s:\n%s", flag, stdout)
		}
	}
}

func TestVersion(t *testing.T) {
	code, stdout, _ := runCLI("-V")
	if code != 0 || stdout != "img2ascii dev\n" {
		t.Errorf("got %d %q", code, stdout)
	}
}

func TestWidthOverride(t *testing.T) {
	path := writeSampleImage(t)
	code, stdout, stderr := runCLI(path, "--width", "80")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "\x1b[") {
		t.Error("expected ANSI escapes on stdout")
	}
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 40 {
		t.Errorf("expected 40 rows for a square image at width 80, got %d", len(lines))
	}
}

func TestFallbackWidth(t *testing.T) {
	path := writeSampleImage(t)
	code, stdout, stderr := runCLI(path, "--plain")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	first := strings.SplitN(stdout, "\n", 2)[0]
	if len(first) != 80 {
		t.Errorf("expected 80 columns, got %d", len(first))
	}
	if !strings.Contains(stderr, "defaulting to 80 characters") {
		t.Errorf("expected fallback warning, got %q", stderr)
	}
}

func TestAutoDetectedWidth(t *testing.T) {
	saved := detect
	defer func() { detect = saved }()
	detect = func() (int, int, bool) { return 62, 24, true }

	path := writeSampleImage(t)
	code, stdout, stderr := runCLI(path, "--plain", "-v")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	if first := strings.SplitN(stdout, "\n", 2)[0]; len(first) != 60 {
		t.Errorf("expected 60 columns, got %d", len(first))
	}
	if !strings.Contains(stderr, "using auto-detected width: 60 characters") {
		t.Errorf("expected width notice in verbose log, got %q", stderr)
	}
}

func TestPlainOutput(t *testing.T) {
	path := writeSampleImage(t)
	code, stdout, _ := runCLI(path, "--width", "10", "--plain")
	if code != 0 {
		t.Fatal("exit code", code)
	}
	if strings.Contains(stdout, "\x1b") {
		t.Error("plain output contains escapes")
	}
}

func TestEdgeMode(t *testing.T) {
	path := writeSampleImage(t)
	code, stdout, stderr := runCLI(path, "--width", "20", "--mode", "edge", "--plain")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	for _, r := range strings.ReplaceAll(stdout, "\n", "") {
		if r != '#' && r != ' ' {
			t.Fatalf("unexpected glyph %q in edge output", r)
		}
	}
}

func TestUnknownMode(t *testing.T) {
	// The mode is checked before the image is read.
	code, stdout, stderr := runCLI("does-not-exist.png", "--mode", "sketch")
	if code == 0 {
		t.Fatal("expected failure")
	}
	if stdout != "" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	if want := "Unknown mode 'sketch'. Use 'standard' or 'edge'."; !strings.Contains(stderr, want) {
		t.Errorf("stderr %q does not contain %q", stderr, want)
	}
}

func TestMissingImage(t *testing.T) {
	path := filepath.Join("testdata", "does-not-exist.png")
	code, stdout, stderr := runCLI(path, "--width", "80")
	if code != 1 {
		t.Fatalf("exit code %d", code)
	}
	if stdout != "" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	if want := `Could not find image file "` + path + `".`; !strings.Contains(stderr, want) {
		t.Errorf("stderr %q does not contain %q", stderr, want)
	}
}

func TestCorruptImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	code, _, stderr := runCLI(path, "--width", "10")
	if code != 1 || !strings.Contains(stderr, "Unsupported image format") {
		t.Errorf("got %d %q", code, stderr)
	}
}

func TestZeroWidth(t *testing.T) {
	path := writeSampleImage(t)
	code, stdout, stderr := runCLI(path, "--width", "0")
	if code != 1 || stdout != "" {
		t.Fatalf("got %d %q", code, stdout)
	}
	if !strings.Contains(stderr, "Target width must be greater than zero.") {
		t.Errorf("stderr %q", stderr)
	}
}

func TestOversizedWidth(t *testing.T) {
	path := writeSampleImage(t)
	code, stdout, stderr := runCLI(path, "--width", "100000")
	if code != 1 || stdout != "" {
		t.Fatalf("got %d with %d bytes of stdout", code, len(stdout))
	}
	if !strings.Contains(stderr, "invalid dimension") {
		t.Errorf("stderr %q", stderr)
	}
}

func TestMissingArgument(t *testing.T) {
	code, _, stderr := runCLI()
	if code != 1 || !strings.Contains(stderr, "IMAGE") {
		t.Errorf("got %d %q", code, stderr)
	}
}

func TestOutputFile(t *testing.T) {
	path := writeSampleImage(t)
	out := filepath.Join(t.TempDir(), "art.txt")
	code, stdout, stderr := runCLI(path, "--width", "12", "-o", out)
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	if stdout != "" {
		t.Errorf("stdout should be empty when writing to a file, got %q", stdout)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("\x1b[0m\n")) {
		t.Error("output file has no ANSI rows")
	}
}

func TestPaletteFlag(t *testing.T) {
	path := writeSampleImage(t)
	bad := filepath.Join(t.TempDir(), "palette.json")
	if err := os.WriteFile(bad, []byte(`{"30":"#000000"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	code, _, stderr := runCLI(path, "--width", "10", "--palette", bad)
	if code != 1 || !strings.Contains(stderr, "Error loading palette") {
		t.Errorf("got %d %q", code, stderr)
	}
}

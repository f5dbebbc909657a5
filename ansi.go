package img2ascii

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Reset clears all terminal attributes.
const Reset = ESC + "[0m"

// sgr returns the escape sequence that sets the foreground to c.
func sgr(c AnsiColor) string {
	return ESC + "[" + strconv.Itoa(c.FG()) + "m"
}

// WriteANSI writes the frame as text: every row is a sequence of color
// escapes and glyphs terminated by a reset and a newline. Without compress
// each cell carries its own escape; with compress a single escape starts
// each run of same-colored cells.
func WriteANSI(w io.Writer, fr Frame, compress bool) error {
	bw := bufio.NewWriter(w)
	for _, row := range fr {
		current := AnsiColor(-1)
		for _, cell := range row {
			if !compress || cell.Color != current {
				bw.WriteString(sgr(cell.Color))
				current = cell.Color
			}
			bw.WriteRune(cell.Glyph)
		}
		bw.WriteString(Reset)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// RenderToANSI returns the uncompressed ANSI text of the frame.
func RenderToANSI(fr Frame) string {
	var sb strings.Builder
	_ = WriteANSI(&sb, fr, false)
	return sb.String()
}

// RenderPlain returns the glyphs of the frame without any escape
// sequences, one line per row.
func RenderPlain(fr Frame) string {
	var sb strings.Builder
	for _, row := range fr {
		for _, cell := range row {
			sb.WriteRune(cell.Glyph)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

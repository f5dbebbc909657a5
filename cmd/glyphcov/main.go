// Command glyphcov reports the ink coverage of a density scale in a
// monospace font and flags glyphs that are lighter than their predecessor.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/glyphmetrics"
	"github.com/wbrown/img2ascii/internal/logx"
)

type options struct {
	Font    string `short:"f" long:"font" value-name:"FILE" description:"TrueType font to measure (default: Go Mono)"`
	Charset string `short:"c" long:"charset" value-name:"GLYPHS" description:"Glyphs to measure, sparse to dense (default: the built-in density scale)"`
	Sort    bool   `short:"s" long:"sort" description:"Print the charset reordered by coverage"`
	Verbose bool   `short:"v" long:"verbose" description:"Print debug information on stderr"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "glyphcov"
	if _, err := parser.ParseArgs(args); err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	level := logx.WARN
	if opts.Verbose {
		level = logx.DEBUG
	}
	log := logx.New(stderr, "glyphcov", level, logx.ColorAuto)

	var r *glyphmetrics.Rasterizer
	var err error
	if opts.Font != "" {
		r, err = glyphmetrics.LoadFont(opts.Font)
	} else {
		r, err = glyphmetrics.NewGoMono()
	}
	if err != nil {
		log.Errorf("loading font: %v", err)
		return 1
	}

	charset := opts.Charset
	if charset == "" {
		charset = img2ascii.DensityScale
	}
	log.Debugf("measuring %d glyphs", len([]rune(charset)))

	cs := r.Measure(charset)
	bad := make(map[int]bool)
	for _, i := range glyphmetrics.Inversions(cs) {
		bad[i] = true
	}
	for i, c := range cs {
		mark := ""
		if bad[i] {
			mark = "  lighter than previous"
		}
		fmt.Fprintf(stdout, "%q\t%.4f%s\n", c.Glyph, c.Coverage, mark)
	}
	if len(bad) > 0 {
		log.Warnf("%d glyphs out of order", len(bad))
	}

	if opts.Sort {
		glyphmetrics.SortByCoverage(cs)
		fmt.Fprintf(stdout, "sorted: %q\n", glyphmetrics.Charset(cs))
	}
	return 0
}

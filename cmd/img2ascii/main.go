// Command img2ascii prints an image as colorized ASCII art.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/internal/logx"
	"github.com/wbrown/img2ascii/internal/terminal"
)

var version = "dev"

// detect is replaced in tests.
var detect = terminal.Detect

type options struct {
	Width    int    `long:"width" value-name:"N" description:"Output width in characters (default: terminal width)"`
	Mode     string `long:"mode" value-name:"MODE" default:"standard" description:"Rendering mode: standard or edge"`
	Oriented bool   `long:"oriented" description:"Draw edge-mode contours with | - / \\ following the edge"`
	Palette  string `long:"palette" value-name:"FILE" description:"JSON palette file replacing the built-in 16 colors"`
	Plain    bool   `long:"plain" description:"Print glyphs only, without color escapes"`
	Output   string `short:"o" long:"output" value-name:"FILE" description:"Write the result to FILE instead of stdout"`
	Verbose  bool   `short:"v" long:"verbose" description:"Print debug information on stderr"`
	Version  bool   `short:"V" long:"version" description:"Print version information and exit"`

	Args struct {
		Image string `positional-arg-name:"IMAGE" description:"Path to the input image (PNG, JPEG, GIF, BMP, TIFF or WebP)"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "img2ascii"
	parser.Usage = "[OPTIONS] <IMAGE>"
	parser.LongDescription = "Convert images to colorized ASCII art in the terminal."

	if _, err := parser.ParseArgs(args); err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	if opts.Version {
		fmt.Fprintf(stdout, "img2ascii %s\n", version)
		return 0
	}

	level := logx.WARN
	if opts.Verbose {
		level = logx.DEBUG
	}
	log := logx.New(stderr, "img2ascii", level, logx.ColorAuto)

	if opts.Args.Image == "" {
		fmt.Fprintln(stderr, "the required argument `IMAGE` was not provided")
		return 1
	}

	mode, err := img2ascii.ParseMode(opts.Mode)
	if err != nil {
		fmt.Fprintf(stderr, "Unknown mode '%s'. Use 'standard' or 'edge'.\n", opts.Mode)
		return 1
	}

	cols, _, ok := detect()
	res := terminal.ResolveWidth(opts.Width, parser.FindOptionByLongName("width").IsSet(), cols, ok)
	switch res.Source {
	case terminal.AutoDetected:
		log.Infof("using auto-detected width: %d characters", res.Width)
	case terminal.Fallback:
		log.Warnf("unable to detect terminal size; defaulting to %d characters", res.Width)
	}
	if res.Width < 1 {
		fmt.Fprintln(stderr, "Target width must be greater than zero.")
		return 1
	}

	ropts := []img2ascii.RendererOption{
		img2ascii.WithMode(mode),
		img2ascii.WithOrientedContours(opts.Oriented),
	}
	if opts.Palette != "" {
		p, err := img2ascii.LoadPalette(opts.Palette)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading palette: %v\n", err)
			return 1
		}
		ropts = append(ropts, img2ascii.WithPalette(p))
	}
	r := img2ascii.NewRenderer(ropts...)

	begin := time.Now()
	grid, err := img2ascii.LoadImage(opts.Args.Image)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintf(stderr, "Could not find image file %q.\n", opts.Args.Image)
		case errors.Is(err, img2ascii.ErrDecode):
			fmt.Fprintf(stderr, "Unsupported image format for file %q.\n", opts.Args.Image)
		default:
			fmt.Fprintf(stderr, "Error reading image: %v\n", err)
		}
		return 1
	}
	log.Debugf("decoded %s: %dx%d pixels", opts.Args.Image, grid.Width(), grid.Height())

	frame, err := r.Convert(grid, res.Width)
	if err != nil {
		fmt.Fprintf(stderr, "Error converting image: %v\n", err)
		return 1
	}
	log.Debugf("%s mode: %dx%d cells in %v", mode, frame.Columns(), frame.Rows(), time.Since(begin))

	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			fmt.Fprintf(stderr, "Error writing output: %v\n", err)
			return 1
		}
		err = write(f, r, frame, opts.Plain)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error writing output: %v\n", err)
			return 1
		}
		log.Infof("output written to %s", opts.Output)
		return 0
	}

	if err := write(consoleWriter(stdout), r, frame, opts.Plain); err != nil {
		fmt.Fprintf(stderr, "Rendering error: %v\n", err)
		return 1
	}
	return 0
}

func write(w io.Writer, r *img2ascii.Renderer, frame img2ascii.Frame, plain bool) error {
	if plain {
		_, err := io.WriteString(w, img2ascii.RenderPlain(frame))
		return err
	}
	return r.Render(w, frame)
}

// consoleWriter wraps a terminal stdout so ANSI escapes are translated on
// Windows consoles.
func consoleWriter(w io.Writer) io.Writer {
	f, ok := w.(*os.File)
	if !ok {
		return w
	}
	if fd := f.Fd(); isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return colorable.NewColorable(f)
	}
	return w
}

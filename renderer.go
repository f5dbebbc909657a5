package img2ascii

import (
	"fmt"
	"image"
	"io"
)

// Renderer holds the configuration of one conversion pipeline. A Renderer
// has no mutable state after construction and may be shared between
// goroutines.
type Renderer struct {
	// Configuration options
	Mode          Mode
	AspectRatio   float64
	LowThreshold  float64
	HighThreshold float64
	Palette       Palette
	EdgeGlyph     rune
	Oriented      bool
	SampleMethod  SampleMethod
	Compress      bool

	density  *DensityMapper
	detector EdgeDetector
	err      error
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a new Renderer with the given options.
// Default values: Mode=ModeStandard, AspectRatio=2.0, thresholds 50/100,
// DefaultPalette, DensityScale, EdgeGlyph='#', block-average sampling,
// pure Go Canny detection and run compression enabled.
func NewRenderer(opts ...RendererOption) *Renderer {
	density, _ := NewDensityMapper(DensityScale)
	r := &Renderer{
		Mode:          ModeStandard,
		AspectRatio:   DefaultAspectRatio,
		LowThreshold:  DefaultLowThreshold,
		HighThreshold: DefaultHighThreshold,
		Palette:       DefaultPalette,
		EdgeGlyph:     DefaultEdgeGlyph,
		SampleMethod:  SampleBlockAverage,
		Compress:      true,
		density:       density,
		detector:      CannyDetector{},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithMode sets the rendering mode.
func WithMode(mode Mode) RendererOption {
	return func(r *Renderer) {
		r.Mode = mode
	}
}

// WithAspectRatio sets the height-to-width ratio of a terminal cell.
func WithAspectRatio(ratio float64) RendererOption {
	return func(r *Renderer) {
		r.AspectRatio = ratio
	}
}

// WithThresholds sets the Canny thresholds used in edge mode.
func WithThresholds(low, high float64) RendererOption {
	return func(r *Renderer) {
		r.LowThreshold, r.HighThreshold = low, high
	}
}

// WithPalette sets the 16-color palette used for quantization.
func WithPalette(p Palette) RendererOption {
	return func(r *Renderer) {
		r.Palette = p
	}
}

// WithDensityScale replaces the standard-mode density scale. An invalid
// scale is reported by Validate.
func WithDensityScale(scale string) RendererOption {
	return func(r *Renderer) {
		m, err := NewDensityMapper(scale)
		if err != nil {
			r.err = err
			return
		}
		r.density = m
	}
}

// WithEdgeGlyph sets the glyph drawn on edge cells.
func WithEdgeGlyph(glyph rune) RendererOption {
	return func(r *Renderer) {
		r.EdgeGlyph = glyph
	}
}

// WithOrientedContours draws edge cells with | - / \ following the edge
// direction instead of a single glyph.
func WithOrientedContours(oriented bool) RendererOption {
	return func(r *Renderer) {
		r.Oriented = oriented
	}
}

// WithSampleMethod sets how source regions are reduced to cells.
func WithSampleMethod(method SampleMethod) RendererOption {
	return func(r *Renderer) {
		r.SampleMethod = method
	}
}

// WithEdgeDetector replaces the edge detection backend.
func WithEdgeDetector(d EdgeDetector) RendererOption {
	return func(r *Renderer) {
		r.detector = d
	}
}

// WithCompression controls whether Render emits one color escape per run
// of same-colored cells rather than one per cell.
func WithCompression(compress bool) RendererOption {
	return func(r *Renderer) {
		r.Compress = compress
	}
}

// Validate reports configuration errors before any pixel is processed.
func (r *Renderer) Validate() error {
	if r.err != nil {
		return r.err
	}
	switch r.Mode {
	case ModeStandard:
	case ModeEdge:
		if err := ValidateThresholds(r.LowThreshold, r.HighThreshold); err != nil {
			return err
		}
		if r.detector == nil {
			return fmt.Errorf("%w: no edge detector configured", ErrInvariantViolation)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedMode, r.Mode)
	}
	if !(r.AspectRatio > 0) {
		return fmt.Errorf("%w: aspect ratio must be positive, got %v",
			ErrInvalidDimension, r.AspectRatio)
	}
	return nil
}

// Convert samples grid at the given number of columns and assembles the
// frame for the configured mode.
func (r *Renderer) Convert(grid PixelGrid, columns int) (Frame, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	samples, err := SampleWith(grid, columns, r.AspectRatio, r.SampleMethod)
	if err != nil {
		return nil, err
	}

	mapper, err := r.glyphMapper(samples)
	if err != nil {
		return nil, err
	}

	return Assemble(samples, mapper, &r.Palette)
}

// ConvertImage is Convert for any image.Image.
func (r *Renderer) ConvertImage(img image.Image, columns int) (Frame, error) {
	return r.Convert(NewPixelGrid(img), columns)
}

// glyphMapper selects the glyph strategy once per conversion.
func (r *Renderer) glyphMapper(samples Samples) (GlyphMapper, error) {
	if r.Mode != ModeEdge {
		return r.density, nil
	}
	mask, err := r.detector.DetectEdges(samples.Gray(), r.LowThreshold, r.HighThreshold)
	if err != nil {
		return nil, fmt.Errorf("edge detection failed: %w", err)
	}
	if mask == nil {
		return nil, fmt.Errorf("%w: edge detector returned no mask", ErrInvariantViolation)
	}
	return &ContourMapper{
		Mask:      mask,
		EdgeGlyph: r.EdgeGlyph,
		Oriented:  r.Oriented,
	}, nil
}

// Render writes the frame to w as ANSI text.
func (r *Renderer) Render(w io.Writer, fr Frame) error {
	return WriteANSI(w, fr, r.Compress)
}

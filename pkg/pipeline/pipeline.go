// Package pipeline renders catalog phases and writes them to disk.
//
// The CLI only parses flags; everything between a phase name and a file on
// disk happens here:
//
//  1. Lookup: resolve the phase in the catalog
//  2. Render: produce SVG (and optionally PNG) bytes with the sink package
//  3. Write: create parent directories and write each artifact
//
// # Usage
//
//	runner, err := pipeline.NewRunner(catalog.Default(), pipeline.Options{}, logger)
//	if err != nil {
//	    return err
//	}
//	paths, err := runner.RenderAll(ctx, pipeline.DefaultOutputDir)
//
// A single phase goes to an explicit path, or to [DefaultPath]:
//
//	paths, err := runner.RenderPhase(ctx, "specify", pipeline.DefaultPath("specify"))
//
// Every failure is terminal. Nothing is retried and files written before a
// failure are left in place.
package pipeline

import (
	"path"
	"slices"

	"github.com/smartsdlc/blogimages/pkg/diagram/sink"
	"github.com/smartsdlc/blogimages/pkg/errors"
)

// DefaultOutputDir is where the blog expects phase diagrams.
const DefaultOutputDir = "public/blog/images/ai-sdlc"

// DefaultPhase is rendered when no phase is named.
const DefaultPhase = "specify"

// DefaultPNGScale renders PNGs at 2x resolution.
const DefaultPNGScale = sink.DefaultScale

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
}

// DefaultPath returns the single-phase output path used when none is given.
// It always uses forward slashes, matching the blog's public/ layout.
func DefaultPath(name string) string {
	return PhasePath(DefaultOutputDir, name)
}

// PhasePath returns the single-phase output path "{dir}/{name}-phase.svg".
func PhasePath(dir, name string) string {
	return path.Join(dir, name+"-phase.svg")
}

// Options controls what the runner produces.
type Options struct {
	// Formats lists the artifacts written per phase. SVG is always written.
	Formats []string

	// MeasureText wraps descriptions by measured glyph width instead of
	// character count.
	MeasureText bool

	// PNGScale is the rasterization factor when FormatPNG is requested.
	PNGScale float64
}

// ValidateAndSetDefaults checks the options and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if !slices.Contains(o.Formats, FormatSVG) {
		o.Formats = append([]string{FormatSVG}, o.Formats...)
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.PNGScale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "png scale must be positive, got %v", o.PNGScale)
	}
	return nil
}

// Wants reports whether format is requested.
func (o Options) Wants(format string) bool {
	return slices.Contains(o.Formats, format)
}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be svg or png)", format)
	}
	return nil
}

// ValidateFormats checks every entry of formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/smartsdlc/blogimages/pkg/diagram/catalog"
	"github.com/smartsdlc/blogimages/pkg/diagram/sink"
	"github.com/smartsdlc/blogimages/pkg/diagram/styles"
	"github.com/smartsdlc/blogimages/pkg/errors"
	"github.com/smartsdlc/blogimages/pkg/fonts"
	"github.com/smartsdlc/blogimages/pkg/render"
)

// Runner renders phases from a catalog and writes them to disk.
//
// The Runner holds no per-render state; it can render any number of
// phases, one after the other.
type Runner struct {
	Catalog *catalog.Catalog
	Logger  *log.Logger

	opts    Options
	svgOpts []sink.SVGOption
}

// NewRunner validates opts and prepares a runner for c.
// A nil catalog selects the built-in one; a nil logger selects log.Default().
func NewRunner(c *catalog.Catalog, opts Options, logger *log.Logger) (*Runner, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if c == nil {
		c = catalog.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	if opts.Wants(FormatPNG) && !render.Available() {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"png export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin")
	}

	r := &Runner{Catalog: c, Logger: logger, opts: opts}
	if opts.MeasureText {
		d := styles.DefaultDimensions()
		m, err := fonts.NewMeasurer(d.DescriptionFontSize)
		if err != nil {
			return nil, err
		}
		r.svgOpts = append(r.svgOpts, sink.WithLineFitter(styles.MeasureFitter(m, d.WrapPixels)))
		logger.Debug("measuring description text",
			"font", fonts.FontFamily, "size", m.Size(), "max_width", d.WrapPixels)
	}
	return r, nil
}

// Render produces the requested artifacts for p, keyed by format.
func (r *Runner) Render(ctx context.Context, p catalog.Phase) (map[string][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	svg, err := sink.RenderSVG(p, r.svgOpts...)
	if err != nil {
		return nil, err
	}
	artifacts := map[string][]byte{FormatSVG: svg}

	if r.opts.Wants(FormatPNG) {
		png, err := sink.RenderPNG(p,
			sink.WithPNGSVGOptions(r.svgOpts...),
			sink.WithScale(r.opts.PNGScale))
		if err != nil {
			return nil, err
		}
		artifacts[FormatPNG] = png
	}
	return artifacts, nil
}

// RenderPhase renders the phase called name and writes it to path.
// Extra formats are written next to path with their own extension, so path
// must end in .svg when any are requested.
// It returns the written paths, SVG first.
func (r *Runner) RenderPhase(ctx context.Context, name, path string) ([]string, error) {
	if r.opts.Wants(FormatPNG) && !strings.EqualFold(filepath.Ext(path), "."+FormatSVG) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"output %s must end in .svg when png export is requested", path)
	}
	p, err := r.Catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	return r.renderTo(ctx, p, path)
}

// RenderAll renders every catalog phase into dir as "{prefix}-{name}-phase.svg",
// in catalog order. It stops at the first failure and returns the paths
// written so far along with the error.
func (r *Runner) RenderAll(ctx context.Context, dir string) ([]string, error) {
	var written []string
	for _, p := range r.Catalog.Phases() {
		paths, err := r.renderTo(ctx, p, filepath.Join(dir, p.Filename()))
		written = append(written, paths...)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func (r *Runner) renderTo(ctx context.Context, p catalog.Phase, path string) ([]string, error) {
	start := time.Now()
	artifacts, err := r.Render(ctx, p)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, format := range r.opts.Formats {
		out := path
		if format != FormatSVG {
			out = withExt(path, format)
		}
		if err := writeFile(out, artifacts[format]); err != nil {
			return written, err
		}
		written = append(written, out)
	}

	r.Logger.Debug("rendered phase",
		"phase", p.Name,
		"use_cases", len(p.UseCases),
		"files", len(written),
		"duration", time.Since(start))
	return written, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "create directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}

func withExt(path, format string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + format
}

package sink

import (
	"github.com/smartsdlc/blogimages/pkg/diagram/catalog"
	"github.com/smartsdlc/blogimages/pkg/render"
)

// DefaultScale rasterizes diagrams at twice their SVG size.
const DefaultScale = 2.0

// PNGOption configures RenderPNG.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions sets the options used to lay out the diagram before it is
// rasterized, so the PNG matches an SVG rendered with the same options.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the rasterization factor. Zero keeps DefaultScale.
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s != 0 {
			r.scale = s
		}
	}
}

// RenderPNG renders the phase diagram for p and rasterizes it with
// rsvg-convert. See [render.Available].
func RenderPNG(p catalog.Phase, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}
	svg, err := RenderSVG(p, r.svgOpts...)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, r.scale)
}

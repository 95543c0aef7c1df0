package sink

import (
	"bytes"
	"fmt"

	"github.com/smartsdlc/blogimages/pkg/diagram/catalog"
	"github.com/smartsdlc/blogimages/pkg/diagram/icons"
	"github.com/smartsdlc/blogimages/pkg/diagram/layout"
	"github.com/smartsdlc/blogimages/pkg/diagram/styles"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style styles.Style
	dims  styles.Dimensions
	fits  styles.LineFitter
}

func WithStyle(s styles.Style) SVGOption           { return func(r *svgRenderer) { r.style = s } }
func WithDimensions(d styles.Dimensions) SVGOption { return func(r *svgRenderer) { r.dims = d } }
func WithLineFitter(f styles.LineFitter) SVGOption { return func(r *svgRenderer) { r.fits = f } }

// RenderSVG renders p as a complete SVG document.
func RenderSVG(p catalog.Phase, opts ...SVGOption) ([]byte, error) {
	r := newSVGRenderer(opts...)

	l, err := layout.Build(p, r.dims)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		l.Width, l.Height, l.Width, l.Height)
	renderFragments(&buf, &r, l)
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// Fragments renders only the diagram body of p, without the <svg> envelope.
func Fragments(p catalog.Phase, opts ...SVGOption) ([]byte, error) {
	r := newSVGRenderer(opts...)

	l, err := layout.Build(p, r.dims)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	renderFragments(&buf, &r, l)
	return buf.Bytes(), nil
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{dims: styles.DefaultDimensions()}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style == nil {
		r.style = styles.Flat{Colors: styles.DefaultColors(), Dims: r.dims}
	}
	if r.fits == nil {
		r.fits = styles.CharFitter(r.dims.WrapChars)
	}
	return r
}

func renderFragments(buf *bytes.Buffer, r *svgRenderer, l layout.Layout) {
	r.style.RenderBackground(buf, l.Width, l.Height)
	r.style.RenderFramework(buf, frameworkBlock(l))
	r.style.RenderLabel(buf, styles.Label{
		X:     l.LabelX,
		Y:     l.LabelY,
		Lines: styles.SplitLines(l.Phase.ConnectionLabel),
	})

	for _, uc := range l.UseCases {
		r.style.RenderArrow(buf, styles.Arrow{
			X1: uc.CenterX(), Y1: l.RailY,
			X2: uc.CenterX(), Y2: uc.Top,
		})
	}

	if l.HasRail() {
		first, last := l.UseCases[0], l.UseCases[len(l.UseCases)-1]
		r.style.RenderConnector(buf, styles.Connector{
			X1: first.CenterX(), Y1: l.RailY,
			X2: last.CenterX(), Y2: l.RailY,
		})
		r.style.RenderConnector(buf, styles.Connector{
			X1: l.Framework.CenterX(), Y1: l.Framework.Bottom(),
			X2: l.Framework.CenterX(), Y2: l.RailY,
		})
	}

	for _, b := range useCaseBlocks(l, r.fits, r.dims.MaxDescriptionLines) {
		r.style.RenderUseCase(buf, b)
	}

	r.style.RenderBranding(buf, l.Width, l.Height)
}

func frameworkBlock(l layout.Layout) styles.Block {
	f := l.Framework
	return styles.Block{
		ID:    "framework",
		X:     f.Left,
		Y:     f.Top,
		W:     f.Width,
		H:     f.Height,
		CX:    f.CenterX(),
		Title: styles.FrameworkTitle,
		Lines: styles.SplitLines(l.Phase.FrameworkSubtitle),
		Icon:  icons.Framework,
	}
}

func useCaseBlocks(l layout.Layout, fits styles.LineFitter, maxLines int) []styles.Block {
	blocks := make([]styles.Block, len(l.UseCases))
	for i, b := range l.UseCases {
		uc := l.Phase.UseCases[i]
		blocks[i] = styles.Block{
			ID:    fmt.Sprintf("usecase-%d", i+1),
			X:     b.Left,
			Y:     b.Top,
			W:     b.Width,
			H:     b.Height,
			CX:    b.CenterX(),
			Title: uc.Title,
			Lines: styles.Wrap(uc.Description, fits, maxLines),
			Icon:  uc.Icon,
		}
	}
	return blocks
}

package styles

import (
	"bytes"
	"fmt"

	"github.com/smartsdlc/blogimages/pkg/diagram/icons"
)

const (
	// FontFamily is the system font stack used for all diagram text.
	FontFamily = `system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif`

	// Branding is the text in the bottom-right corner of every diagram.
	Branding = "smartsdlc.dev"

	// FrameworkTitle heads the framework block.
	FrameworkTitle = "AI Framework"
)

// arrow head geometry
const (
	arrowHeadHalfWidth = 6
	arrowHeadLength    = 12
)

// Flat is the default style: solid rounded blocks on a light canvas.
type Flat struct {
	Colors Colors
	Dims   Dimensions
}

// Default returns the Flat style with the default palette and dimensions.
func Default() Flat {
	return Flat{Colors: DefaultColors(), Dims: DefaultDimensions()}
}

func (s Flat) RenderBackground(buf *bytes.Buffer, w, h int) {
	fmt.Fprintf(buf, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", w, h, s.Colors.Background)

	fmt.Fprintf(buf, `  <g class="pattern" opacity="0.3" stroke="%s" stroke-width="1" fill="none">`+"\n", s.Colors.Pattern)
	fmt.Fprintf(buf, `    <path d="M%d 20 L%d 50 L%d 80 L%d 50 Z"/>`+"\n", w-120, w-80, w-120, w-160)
	fmt.Fprintf(buf, `    <path d="M%d 50 L%d 80 L%d 110 L%d 80 Z"/>`+"\n", w-80, w-40, w-80, w-120)
	fmt.Fprintf(buf, `    <path d="M%d 0 L%d 40"/>`+"\n", w-60, w-60)
	fmt.Fprintf(buf, `    <path d="M%d 40 L%d 100"/>`+"\n", w-20, w-20)
	fmt.Fprintf(buf, `    <line x1="%d" y1="10" x2="%d" y2="10"/>`+"\n", w-140, w-100)
	fmt.Fprintf(buf, `    <line x1="%d" y1="120" x2="%d" y2="120"/>`+"\n", w-40, w)
	buf.WriteString("  </g>\n")

	fmt.Fprintf(buf, `  <g class="pattern" opacity="0.3" stroke="%s" stroke-width="1" fill="none">`+"\n", s.Colors.Pattern)
	fmt.Fprintf(buf, `    <path d="M40 %d L80 %d L40 %d L0 %d Z"/>`+"\n", h-80, h-50, h-20, h-50)
	fmt.Fprintf(buf, `    <path d="M80 %d L120 %d L80 %d L40 %d Z"/>`+"\n", h-110, h-80, h-50, h-80)
	fmt.Fprintf(buf, `    <line x1="0" y1="%d" x2="60" y2="%d"/>`+"\n", h-120, h-120)
	fmt.Fprintf(buf, `    <line x1="100" y1="%d" x2="160" y2="%d"/>`+"\n", h-40, h-40)
	buf.WriteString("  </g>\n")
}

func (s Flat) RenderFramework(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf, `  <g id="%s" class="framework-block">`+"\n", EscapeXML(b.ID))
	fmt.Fprintf(buf, `    <rect x="%d" y="%d" width="%d" height="%d" rx="%d" fill="%s"/>`+"\n",
		b.X, b.Y, b.W, b.H, s.Dims.FrameworkRadius, s.Colors.Framework)
	fmt.Fprintf(buf, `    <text x="%d" y="%d" text-anchor="middle" fill="%s" font-family="%s" font-size="22" font-weight="600">%s</text>`+"\n",
		b.CX, b.Y+35, s.Colors.TextLight, FontFamily, EscapeXML(b.Title))
	fmt.Fprintf(buf, `    <g transform="translate(%d, %d)">%s</g>`+"\n", b.CX, b.Y+90, icons.Lookup(b.Icon))
	fmt.Fprintf(buf, `    <text x="%d" y="%d" text-anchor="middle" fill="%s" font-family="%s" font-size="13" opacity="0.9">`,
		b.CX, b.Y+155, s.Colors.TextLight, FontFamily)
	writeTspans(buf, b.CX, 18, b.Lines)
	buf.WriteString("</text>\n")
	buf.WriteString("  </g>\n")
}

func (s Flat) RenderLabel(buf *bytes.Buffer, l Label) {
	fmt.Fprintf(buf, `  <text class="connection-label" x="%d" y="%d" text-anchor="middle" fill="%s" font-family="%s" font-size="14">`,
		l.X, l.Y, s.Colors.TextDark, FontFamily)
	writeTspans(buf, l.X, 16, l.Lines)
	buf.WriteString("</text>\n")
}

func (s Flat) RenderArrow(buf *bytes.Buffer, a Arrow) {
	midY := (a.Y1 + a.Y2) / 2
	buf.WriteString("  <g class=\"arrow\">\n")
	fmt.Fprintf(buf, `    <path d="M%d %d L%d %d L%d %d L%d %d" fill="none" stroke="%s" stroke-width="%d"/>`+"\n",
		a.X1, a.Y1, a.X1, midY, a.X2, midY, a.X2, a.Y2-s.Dims.ArrowHeadSize, s.Colors.Arrow, s.Dims.ArrowWidth)
	fmt.Fprintf(buf, `    <polygon points="%d,%d %d,%d %d,%d" fill="%s"/>`+"\n",
		a.X2, a.Y2,
		a.X2-arrowHeadHalfWidth, a.Y2-arrowHeadLength,
		a.X2+arrowHeadHalfWidth, a.Y2-arrowHeadLength,
		s.Colors.ArrowHead)
	buf.WriteString("  </g>\n")
}

func (s Flat) RenderConnector(buf *bytes.Buffer, c Connector) {
	fmt.Fprintf(buf, `  <line class="connector" x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="%d"/>`+"\n",
		c.X1, c.Y1, c.X2, c.Y2, s.Colors.Arrow, s.Dims.ArrowWidth)
}

func (s Flat) RenderUseCase(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf, `  <g id="%s" class="usecase-block">`+"\n", EscapeXML(b.ID))
	fmt.Fprintf(buf, `    <rect x="%d" y="%d" width="%d" height="%d" rx="%d" fill="%s"/>`+"\n",
		b.X, b.Y, b.W, b.H, s.Dims.UseCaseRadius, s.Colors.UseCase)
	fmt.Fprintf(buf, `    <g transform="translate(%d, %d)">%s</g>`+"\n", b.CX, b.Y+50, icons.Lookup(b.Icon))
	fmt.Fprintf(buf, `    <text x="%d" y="%d" text-anchor="middle" fill="%s" font-family="%s" font-size="18" font-weight="600">%s</text>`+"\n",
		b.CX, b.Y+100, s.Colors.TextLight, FontFamily, EscapeXML(b.Title))
	fmt.Fprintf(buf, `    <text x="%d" y="%d" text-anchor="middle" fill="%s" font-family="%s" font-size="%g" opacity="0.9">`,
		b.CX, b.Y+125, s.Colors.TextLight, FontFamily, s.Dims.DescriptionFontSize)
	writeTspans(buf, b.CX, 16, b.Lines)
	buf.WriteString("</text>\n")
	buf.WriteString("  </g>\n")
}

func (s Flat) RenderBranding(buf *bytes.Buffer, w, h int) {
	fmt.Fprintf(buf, `  <text class="branding" x="%d" y="%d" text-anchor="end" fill="%s" font-family="%s" font-size="14">%s</text>`+"\n",
		w-30, h-25, s.Colors.TextMuted, FontFamily, Branding)
}

// Package fonts measures rendered text width for diagram layout.
//
// Diagrams are drawn with a sans-serif system font stack, so the exact font
// is not known when the SVG is written. Go Regular has similar metrics and
// ships with golang.org/x/image, which makes it a stable stand-in for
// measuring wrapped description lines.
//
//	m, err := fonts.NewMeasurer(12)
//	w := m.Measure("Generates structured requirements") // user units
package fonts

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/smartsdlc/blogimages/pkg/errors"
)

// FontFamily names the font used for measurement.
const FontFamily = "Go Regular"

// Measurer measures text set in Go Regular at a fixed size.
// A Measurer is not safe for concurrent use.
type Measurer struct {
	face font.Face
	size float64
}

// NewMeasurer parses the embedded Go Regular font at size points.
// Sizes are in SVG user units (72 DPI, one point per unit).
func NewMeasurer(size float64) (*Measurer, error) {
	if size <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "font size must be positive, got %v", size)
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err, "parse %s", FontFamily)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72})
	return &Measurer{face: face, size: size}, nil
}

// Measure returns the advance width of s.
func (m *Measurer) Measure(s string) float64 {
	return float64(font.MeasureString(m.face, s)) / 64
}

// Size returns the font size the measurer was created with.
func (m *Measurer) Size() float64 { return m.size }

package styles

// Dimensions holds the fixed geometry of a phase diagram, in SVG user units.
type Dimensions struct {
	// Canvas
	Width, Height int
	Padding       int

	// Framework block (top, centered)
	FrameworkWidth  int
	FrameworkHeight int
	FrameworkRadius int
	FrameworkY      int

	// Use-case blocks (bottom row)
	UseCaseWidth  int
	UseCaseHeight int
	UseCaseRadius int
	UseCaseGap    int
	UseCaseY      int

	// Connectors, measured from the framework block's bottom edge
	RailOffset   int // horizontal rail below the framework block
	LabelOffsetX int // connection label, left of center
	LabelOffsetY int

	ArrowWidth    int
	ArrowHeadSize int

	// Description text
	WrapChars           int     // approximate characters per line
	WrapPixels          float64 // line width when glyphs are measured
	MaxDescriptionLines int
	DescriptionFontSize float64
}

// DefaultDimensions returns the 1600×900 blog diagram geometry.
func DefaultDimensions() Dimensions {
	return Dimensions{
		Width:   1600,
		Height:  900,
		Padding: 60,

		FrameworkWidth:  320,
		FrameworkHeight: 200,
		FrameworkRadius: 16,
		FrameworkY:      80,

		UseCaseWidth:  280,
		UseCaseHeight: 220,
		UseCaseRadius: 16,
		UseCaseGap:    40,
		UseCaseY:      520,

		RailOffset:   80,
		LabelOffsetX: 200,
		LabelOffsetY: 60,

		ArrowWidth:    2,
		ArrowHeadSize: 10,

		WrapChars:           28,
		WrapPixels:          200,
		MaxDescriptionLines: 4,
		DescriptionFontSize: 12,
	}
}

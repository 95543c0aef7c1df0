package styles

// Colors is the diagram palette.
type Colors struct {
	Background string
	Pattern    string

	Framework string // framework block fill (muted teal)
	UseCase   string // use-case block fill (soft purple)

	TextDark  string
	TextLight string
	TextMuted string

	Arrow     string
	ArrowHead string
}

// DefaultColors returns the smartsdlc.dev palette.
func DefaultColors() Colors {
	return Colors{
		Background: "#f8f9fa",
		Pattern:    "#e9ecef",
		Framework:  "#5eaaa8",
		UseCase:    "#9b8ac4",
		TextDark:   "#334155",
		TextLight:  "#ffffff",
		TextMuted:  "#64748b",
		Arrow:      "#94a3b8",
		ArrowHead:  "#64748b",
	}
}

package styles

import "bytes"

// Style defines the visual appearance of a phase diagram.
// Implementations control how each fragment is drawn; layout is fixed.
type Style interface {
	// RenderBackground writes the canvas fill and decorative pattern.
	RenderBackground(buf *bytes.Buffer, width, height int)
	// RenderFramework writes the framework block with its title, icon and subtitle.
	RenderFramework(buf *bytes.Buffer, b Block)
	// RenderLabel writes the connection label.
	RenderLabel(buf *bytes.Buffer, l Label)
	// RenderArrow writes one elbow arrow from the rail down to a use case.
	RenderArrow(buf *bytes.Buffer, a Arrow)
	// RenderConnector writes a plain connector line.
	RenderConnector(buf *bytes.Buffer, c Connector)
	// RenderUseCase writes a use-case block with icon, title and description.
	RenderUseCase(buf *bytes.Buffer, b Block)
	// RenderBranding writes the branding text in the bottom-right corner.
	RenderBranding(buf *bytes.Buffer, width, height int)
}

// Block contains all data needed to render a framework or use-case block.
type Block struct {
	ID         string   // Element id, e.g. "framework" or "usecase-2"
	X, Y, W, H int      // Top-left corner and size
	CX         int      // Horizontal center (text anchor)
	Title      string   // Heading text
	Lines      []string // Subtitle or wrapped description lines
	Icon       string   // Icon library key
}

// Label is a multi-line text anchored at its first baseline.
type Label struct {
	X, Y  int
	Lines []string
}

// Arrow runs from the rail at (X1, Y1) down to the top of a block at (X2, Y2).
type Arrow struct {
	X1, Y1, X2, Y2 int
}

// Connector is a straight line segment.
type Connector struct {
	X1, Y1, X2, Y2 int
}

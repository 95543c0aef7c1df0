package layout

// Block represents a single rectangular element in the diagram.
// Coordinates are integer SVG user units with the origin at the top left.
type Block struct {
	Left, Top     int
	Width, Height int
}

// Right returns the x coordinate of the right edge.
func (b Block) Right() int { return b.Left + b.Width }

// Bottom returns the y coordinate of the bottom edge.
func (b Block) Bottom() int { return b.Top + b.Height }

// CenterX returns the horizontal center point of the block.
func (b Block) CenterX() int { return b.Left + b.Width/2 }

// centered returns a block of the given size whose horizontal center is cx.
func centered(cx, top, width, height int) Block {
	return Block{Left: cx - width/2, Top: top, Width: width, Height: height}
}

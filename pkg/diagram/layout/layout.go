// Package layout computes phase diagram geometry.
//
// [Build] maps a phase onto the fixed canvas: one framework block centered
// at the top and one block per use case spread evenly along a bottom row.
// The result is plain integer coordinates; drawing is left to the sink
// package.
//
//	l, err := layout.Build(phase, styles.DefaultDimensions())
//	fmt.Println(l.UseCases[0].CenterX()) // 480 for three use cases
package layout

import (
	"github.com/smartsdlc/blogimages/pkg/diagram/catalog"
	"github.com/smartsdlc/blogimages/pkg/diagram/styles"
	"github.com/smartsdlc/blogimages/pkg/errors"
)

// Layout is the resolved geometry of one phase diagram.
// It is derived per render call and never modified afterwards.
type Layout struct {
	Phase catalog.Phase

	Width, Height int

	Framework Block
	UseCases  []Block // in catalog order, left to right

	// RailY is where the arrows to the use cases leave the shared rail.
	RailY int

	// Label is the anchor of the connection label's first line.
	LabelX, LabelY int
}

// Build lays out p on the canvas described by d.
// Use cases are separated by d.UseCaseGap and the row as a whole is centered
// horizontally. A phase without use cases cannot be laid out and yields an
// EMPTY_PHASE error.
func Build(p catalog.Phase, d styles.Dimensions) (Layout, error) {
	n := len(p.UseCases)
	if n == 0 {
		return Layout{}, errors.New(errors.ErrCodeEmptyPhase, "phase %q has no use cases", p.Name)
	}

	centerX := d.Width / 2
	framework := centered(centerX, d.FrameworkY, d.FrameworkWidth, d.FrameworkHeight)

	rowWidth := n*d.UseCaseWidth + (n-1)*d.UseCaseGap
	firstCenter := (d.Width-rowWidth)/2 + d.UseCaseWidth/2
	step := d.UseCaseWidth + d.UseCaseGap

	useCases := make([]Block, n)
	for i := range useCases {
		useCases[i] = centered(firstCenter+i*step, d.UseCaseY, d.UseCaseWidth, d.UseCaseHeight)
	}

	return Layout{
		Phase:     p,
		Width:     d.Width,
		Height:    d.Height,
		Framework: framework,
		UseCases:  useCases,
		RailY:     framework.Bottom() + d.RailOffset,
		LabelX:    centerX - d.LabelOffsetX,
		LabelY:    framework.Bottom() + d.LabelOffsetY,
	}, nil
}

// RowWidth returns the horizontal span occupied by the use-case blocks,
// from the left edge of the first to the right edge of the last.
func (l Layout) RowWidth() int {
	if len(l.UseCases) == 0 {
		return 0
	}
	return l.UseCases[len(l.UseCases)-1].Right() - l.UseCases[0].Left
}

// HasRail reports whether the diagram needs the shared horizontal rail.
// A single use case is connected by its arrow alone.
func (l Layout) HasRail() bool {
	return len(l.UseCases) > 1
}

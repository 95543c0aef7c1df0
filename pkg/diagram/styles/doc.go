// Package styles defines the design system for phase diagrams.
//
// # Overview
//
// Every diagram shares one visual language: a light patterned background,
// a teal framework block on top, purple use-case blocks below, slate
// connectors and a branding line in the bottom-right corner. This package
// holds the pieces of that language:
//
//   - [Colors] and [Dimensions]: the fixed palette and geometry
//   - [Style]: the interface that writes each markup fragment
//   - [Flat]: the default style used for all blog diagrams
//   - [Wrap], [EscapeXML]: text helpers shared by every style
//
// # Text Wrapping
//
// Descriptions are wrapped greedily on word boundaries. The default
// [CharFitter] approximates line width by character count, which is what
// the published diagrams use. [MeasureFitter] swaps in real glyph widths
// from a [Measurer] (see the fonts package) when visual fidelity matters:
//
//	lines := styles.Wrap(desc, styles.CharFitter(28), 4)
//
// # Creating Custom Styles
//
// Implement [Style] and write SVG elements to the provided bytes.Buffer.
// All text handed to a style has already been split into lines but not
// escaped; styles must pass it through [EscapeXML].
package styles

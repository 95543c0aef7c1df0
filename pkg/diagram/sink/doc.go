// Package sink turns a phase into SVG output.
//
// [RenderSVG] lays the phase out with [layout.Build] and draws every
// fragment through a [styles.Style]. Fragments are always emitted in the
// same order:
//
//  1. background
//  2. framework block
//  3. connection label
//  4. arrows, one per use case
//  5. connector lines (shared rail and framework drop; only with two or
//     more use cases)
//  6. use-case blocks
//  7. branding
//
// Rendering is pure: the same phase and options give byte-identical output.
//
//	svg, err := sink.RenderSVG(phase,
//	    sink.WithLineFitter(styles.MeasureFitter(m, 200)),
//	)
//
// # Options
//
//   - [WithStyle]: replace the default [styles.Flat] look
//   - [WithDimensions]: change canvas and block geometry
//   - [WithLineFitter]: change how descriptions are wrapped
//
// [RenderPNG] rasterizes the same SVG through rsvg-convert.
package sink

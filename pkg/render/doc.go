// Package render converts finished SVG documents into other formats.
//
// Conversion shells out to rsvg-convert from librsvg, which must be on PATH:
//
//	png, err := render.ToPNG(svg, 2.0) // 2x scale
//
// [Available] reports whether the converter is installed so callers can fail
// early, before any diagram is rendered.
package render

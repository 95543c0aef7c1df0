// Package icons holds the fixed icon library used by phase diagrams.
//
// Each icon is an SVG group centered on the origin so callers can place it
// with a single translate. Icons are drawn with white strokes and are meant
// to sit on the colored diagram blocks.
//
//	frag := icons.Lookup("backlog")
//	fmt.Fprintf(buf, `<g transform="translate(%d, %d)">%s</g>`, x, y, frag)
package icons

import (
	"maps"
	"slices"
)

const (
	// Framework is the icon drawn inside the framework block.
	Framework = "ai_framework"

	// Fallback is used for use cases that name an icon the library lacks.
	Fallback = "task_writing"
)

// Get returns the fragment for name and whether the library has it.
func Get(name string) (string, bool) {
	frag, ok := library[name]
	return frag, ok
}

// Lookup returns the fragment for name, or the [Fallback] icon if the
// library has no entry for it.
func Lookup(name string) string {
	if frag, ok := library[name]; ok {
		return frag
	}
	return library[Fallback]
}

// Has reports whether the library contains name.
func Has(name string) bool {
	_, ok := library[name]
	return ok
}

// Names returns all icon names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(library))
}

package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"unicode/utf8"
)

// EscapeXML escapes s for use as SVG text content or attribute value.
// The markup characters <, >, &, " and ' are all replaced.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// SplitLines splits explicit multi-line text on "\n".
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// LineFitter reports whether a candidate line fits the available width.
// n is the zero-based index of the line being filled.
type LineFitter func(line string, n int) bool

// CharFitter approximates line width by character count.
// The first line holds one character less than the rest, which is how the
// published diagrams were wrapped.
func CharFitter(width int) LineFitter {
	return func(line string, n int) bool {
		limit := width
		if n == 0 {
			limit--
		}
		return utf8.RuneCountInString(line) <= limit
	}
}

// Measurer returns the rendered width of s in user units.
type Measurer interface {
	Measure(s string) float64
}

// MeasureFitter fits lines by measured glyph width. Every line gets the same
// width.
func MeasureFitter(m Measurer, maxWidth float64) LineFitter {
	return func(line string, _ int) bool {
		return m.Measure(line) <= maxWidth
	}
}

// Wrap greedily breaks text into lines on whitespace.
// A word is moved to the next line when appending it would make the current
// line not fit. A word that does not fit on its own still gets its own line;
// words are never split, and no empty line is emitted before such a word.
// At most maxLines lines are returned (no limit when maxLines <= 0); the rest
// of the text is dropped.
func Wrap(text string, fits LineFitter, maxLines int) []string {
	var lines []string
	var cur string

	for _, word := range strings.Fields(text) {
		if cur == "" {
			cur = word
			continue
		}
		if candidate := cur + " " + word; fits(candidate, len(lines)) {
			cur = candidate
			continue
		}
		lines = append(lines, cur)
		if maxLines > 0 && len(lines) == maxLines {
			return lines
		}
		cur = word
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

// writeTspans writes one <tspan> per line, each lineHeight below the last.
func writeTspans(buf *bytes.Buffer, x, lineHeight int, lines []string) {
	for i, line := range lines {
		dy := 0
		if i > 0 {
			dy = lineHeight
		}
		fmt.Fprintf(buf, `<tspan x="%d" dy="%d">%s</tspan>`, x, dy, EscapeXML(line))
	}
}

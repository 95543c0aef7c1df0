package imagegen

import (
	"strings"

	"github.com/smartsdlc/blogimages/pkg/errors"
)

// Style selects the guidance added to a prompt.
type Style string

const (
	StyleDiagram      Style = "diagram"
	StyleCover        Style = "cover"
	StyleFlowchart    Style = "flowchart"
	StyleArchitecture Style = "architecture"
	StyleCustom       Style = "custom" // no extra guidance
)

// DefaultStyle is used when no style is given.
const DefaultStyle = StyleDiagram

// styleOrder lists the styles as shown in help text.
var styleOrder = []Style{StyleDiagram, StyleCover, StyleFlowchart, StyleArchitecture, StyleCustom}

const designContext = `
Style guidelines for smartsdlc.dev blog diagrams:
- Light/white background with very subtle geometric line patterns
- Muted, professional color palette: soft grays (#f5f5f5, #e0e0e0), slate blues (#64748b)
- Accent colors used sparingly: soft teal, muted purple, gentle amber
- Clean, corporate, minimalist aesthetic
- Soft drop shadows on elements
- No harsh contrasts or neon/glowing effects
- Typography: clean sans-serif, dark gray text (#334155)
- Overall feel: professional, calm, trustworthy, like a polished presentation slide
`

var guidance = map[Style]string{
	StyleDiagram: `
Create a technical diagram with:
- Clean white/light gray background with subtle geometric patterns
- Soft rounded rectangles with gentle shadows
- Muted color accents (not bright or saturated)
- Professional corporate presentation style
- Clear labels in dark gray text
- Subtle connecting lines
`,
	StyleCover: `
Create a blog cover image with:
- Light gradient background (white to soft gray)
- Abstract subtle wave or geometric patterns
- Muted accent colors
- Professional and calm aesthetic
- No text (text will be added separately)
- Suitable for 16:9 aspect ratio
`,
	StyleFlowchart: `
Create a flowchart diagram with:
- Light/white background with subtle geometric patterns
- Rounded rectangles with soft shadows for process steps
- Muted color borders (soft teal, slate gray, gentle purple)
- Gray arrows showing flow direction
- Clean, corporate presentation style
- Dark gray text labels
`,
	StyleArchitecture: `
Create an architecture diagram with:
- Light background with subtle patterns
- Layered visualization with soft shadows
- Muted color-coded components
- Gentle connecting lines in gray
- Professional technical illustration style
- Corporate presentation aesthetic
`,
	StyleCustom: "",
}

// Styles returns every supported style name.
func Styles() []string {
	names := make([]string, len(styleOrder))
	for i, s := range styleOrder {
		names[i] = string(s)
	}
	return names
}

// ParseStyle converts a flag value into a Style.
func ParseStyle(s string) (Style, error) {
	style := Style(s)
	if _, ok := guidance[style]; !ok {
		return "", errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (choose from %s)", s, strings.Join(Styles(), ", "))
	}
	return style, nil
}

// Guidance returns the prompt guidance for s. Unknown styles have none.
func (s Style) Guidance() string {
	return guidance[s]
}

// BuildPrompt wraps request in the blog design guidelines and the guidance
// for style.
func BuildPrompt(request string, style Style) string {
	return designContext + "\n\n" + style.Guidance() + "\n\nGenerate: " + request
}

package sink

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/smartsdlc/blogimages/pkg/diagram/catalog"
	"github.com/smartsdlc/blogimages/pkg/diagram/styles"
	"github.com/smartsdlc/blogimages/pkg/errors"
)

func mustPhase(t *testing.T, name string) catalog.Phase {
	t.Helper()
	p, err := catalog.Default().Lookup(name)
	if err != nil {
		t.Fatalf("Lookup(%q) error = %v", name, err)
	}
	return p
}

func TestRenderSVGBlockCounts(t *testing.T) {
	for _, p := range catalog.Default().Phases() {
		t.Run(p.Name, func(t *testing.T) {
			svg, err := RenderSVG(p)
			if err != nil {
				t.Fatalf("RenderSVG() error = %v", err)
			}
			out := string(svg)

			if got := strings.Count(out, `class="framework-block"`); got != 1 {
				t.Errorf("framework blocks = %d, want 1", got)
			}
			if got := strings.Count(out, `class="usecase-block"`); got != len(p.UseCases) {
				t.Errorf("use-case blocks = %d, want %d", got, len(p.UseCases))
			}
			if got := strings.Count(out, `class="arrow"`); got != len(p.UseCases) {
				t.Errorf("arrows = %d, want %d", got, len(p.UseCases))
			}
			if got := strings.Count(out, `class="connector"`); got != 2 {
				t.Errorf("connectors = %d, want 2", got)
			}
		})
	}
}

func TestRenderSVGEnvelope(t *testing.T) {
	svg, err := RenderSVG(mustPhase(t, "specify"))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	out := string(svg)

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1600 900" width="1600" height="900">`
	if !strings.HasPrefix(out, want) {
		t.Errorf("RenderSVG() should start with %q", want)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("RenderSVG() should end with </svg>")
	}
}

func TestRenderSVGFragmentOrder(t *testing.T) {
	svg, err := RenderSVG(mustPhase(t, "design"))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	out := string(svg)

	markers := []string{
		`class="pattern"`,
		`class="framework-block"`,
		`class="connection-label"`,
		`class="arrow"`,
		`class="connector"`,
		`class="usecase-block"`,
		`class="branding"`,
	}
	last := -1
	for _, m := range markers {
		i := strings.Index(out, m)
		if i < 0 {
			t.Fatalf("missing %s", m)
		}
		if i < last {
			t.Errorf("%s appears out of order", m)
		}
		last = i
	}
}

func TestRenderSVGSingleUseCaseHasNoRail(t *testing.T) {
	p := catalog.Phase{
		Name:              "solo",
		FrameworkSubtitle: "One",
		ConnectionLabel:   "Feeds",
		UseCases:          []catalog.UseCase{{Title: "Only", Description: "Alone.", Icon: "backlog"}},
	}
	svg, err := RenderSVG(p)
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	out := string(svg)

	if strings.Contains(out, `class="connector"`) {
		t.Error("single use case should not draw connector lines")
	}
	if got := strings.Count(out, `class="arrow"`); got != 1 {
		t.Errorf("arrows = %d, want 1", got)
	}
}

func TestRenderSVGEscapesText(t *testing.T) {
	p := catalog.Phase{
		Name:              "escape",
		FrameworkSubtitle: `Fast <em> & "loud"`,
		ConnectionLabel:   "A & B",
		UseCases: []catalog.UseCase{
			{Title: `<script>alert("x")</script>`, Description: `Tom & Jerry say "hi" <b>`, Icon: "backlog"},
			{Title: "Q&A", Description: "ok", Icon: "codebase"},
		},
	}
	svg, err := RenderSVG(p)
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	out := string(svg)

	for _, raw := range []string{"<script>", "<em>", "<b>", `"loud"`, "Q&A", "A & B", "Tom & Jerry"} {
		if strings.Contains(out, raw) {
			t.Errorf("output contains unescaped %q", raw)
		}
	}
	for _, escaped := range []string{"&lt;script&gt;", "Q&amp;A", "A &amp; B", "&#34;hi&#34;"} {
		if !strings.Contains(out, escaped) {
			t.Errorf("output missing %q", escaped)
		}
	}
	assertWellFormed(t, svg)
}

func TestRenderSVGDeterministic(t *testing.T) {
	p := mustPhase(t, "develop")
	a, err := RenderSVG(p)
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	b, err := RenderSVG(p)
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("RenderSVG() is not byte-identical across calls")
	}
}

func TestRenderSVGWellFormed(t *testing.T) {
	for _, p := range catalog.Default().Phases() {
		svg, err := RenderSVG(p)
		if err != nil {
			t.Fatalf("RenderSVG(%s) error = %v", p.Name, err)
		}
		assertWellFormed(t, svg)
	}
}

func TestRenderSVGEmptyPhase(t *testing.T) {
	_, err := RenderSVG(catalog.Phase{Name: "empty"})
	if !errors.Is(err, errors.ErrCodeEmptyPhase) {
		t.Errorf("RenderSVG() error = %v, want EMPTY_PHASE", err)
	}
}

func TestRenderSVGDescriptionWrap(t *testing.T) {
	long := strings.Repeat("word ", 60)
	p := catalog.Phase{
		Name:     "wrap",
		UseCases: []catalog.UseCase{{Title: "T", Description: long, Icon: "backlog"}},
	}
	svg, err := RenderSVG(p)
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	block := string(svg[bytes.Index(svg, []byte(`class="usecase-block"`)):])
	if got := strings.Count(block, "<tspan"); got != 4 {
		t.Errorf("description tspans = %d, want 4", got)
	}
}

func TestRenderSVGOptions(t *testing.T) {
	d := styles.DefaultDimensions()
	d.Width, d.Height = 1200, 675

	p := mustPhase(t, "specify")
	svg, err := RenderSVG(p,
		WithDimensions(d),
		WithLineFitter(func(string, int) bool { return false }),
	)
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	out := string(svg)

	if !strings.Contains(out, `viewBox="0 0 1200 675"`) {
		t.Error("custom dimensions not applied to envelope")
	}
	// Nothing fits, so every word is its own line, capped at four.
	if !strings.Contains(out, `dy="16">structured</tspan>`) {
		t.Error("line fitter not applied to descriptions")
	}
}

func TestFragmentsOmitEnvelope(t *testing.T) {
	body, err := Fragments(mustPhase(t, "release"))
	if err != nil {
		t.Fatalf("Fragments() error = %v", err)
	}
	if bytes.Contains(body, []byte("<svg")) {
		t.Error("Fragments() should not include the <svg> element")
	}
	if !bytes.Contains(body, []byte(`class="branding"`)) {
		t.Error("Fragments() should include the branding")
	}
}

func assertWellFormed(t *testing.T, svg []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(svg))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("invalid XML: %v", err)
		}
	}
}

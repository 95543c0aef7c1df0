package styles

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Backlog", "Backlog"},
		{"ampersand", "Codebase Q&A", "Codebase Q&amp;A"},
		{"angle brackets", "<script>", "&lt;script&gt;"},
		{"double quote", `say "hi"`, "say &#34;hi&#34;"},
		{"single quote", "it's", "it&#39;s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeXML(tt.input))
		})
	}
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"Code Patterns &", "Conventions"}, SplitLines("Code Patterns &\nConventions"))
	assert.Equal(t, []string{"single"}, SplitLines("single"))
}

func TestWrapCharacterWidth(t *testing.T) {
	desc := "Generates structured requirements, user stories, and acceptance criteria based on best practices."
	lines := Wrap(desc, CharFitter(28), 4)

	require.Len(t, lines, 4)
	assert.Equal(t, []string{
		"Generates structured",
		"requirements, user stories,",
		"and acceptance criteria",
		"based on best practices.",
	}, lines)
}

func TestWrapTruncatesToMaxLines(t *testing.T) {
	text := strings.Repeat("word ", 60)
	lines := Wrap(text, CharFitter(28), 4)
	assert.Len(t, lines, 4)

	unlimited := Wrap(text, CharFitter(28), 0)
	assert.Greater(t, len(unlimited), 4)
}

func TestWrapLongWordGetsOwnLine(t *testing.T) {
	long := strings.Repeat("x", 40)
	lines := Wrap("short "+long+" tail", CharFitter(28), 4)
	assert.Equal(t, []string{"short", long, "tail"}, lines)
}

func TestCharFitterFirstLineShorter(t *testing.T) {
	fits := CharFitter(28)
	line := strings.Repeat("a", 28)

	assert.False(t, fits(line, 0))
	assert.True(t, fits(line[:27], 0))
	assert.True(t, fits(line, 1))
	assert.False(t, fits(line+"a", 1))
}

func TestWrapFirstLineBreaksEarlier(t *testing.T) {
	desc := "Generates architecture docs, API references, and onboarding guides from code."
	assert.Equal(t, []string{
		"Generates architecture",
		"docs, API references, and",
		"onboarding guides from code.",
	}, Wrap(desc, CharFitter(28), 4))
}

func TestWrapLongFirstWordNoEmptyLine(t *testing.T) {
	first := strings.Repeat("x", 28)
	lines := Wrap(first+" ab", CharFitter(28), 4)
	require.NotEmpty(t, lines)
	assert.NotEmpty(t, lines[0])
	assert.Equal(t, []string{first, "ab"}, lines)

	lines = Wrap(strings.Repeat("y", 27)+" z", CharFitter(28), 4)
	assert.Equal(t, []string{strings.Repeat("y", 27), "z"}, lines)
}

func TestWrapEmpty(t *testing.T) {
	assert.Empty(t, Wrap("", CharFitter(28), 4))
	assert.Empty(t, Wrap("   \n\t ", CharFitter(28), 4))
}

func TestWrapProperties(t *testing.T) {
	inputs := []string{
		"Answers questions about code, traces dependencies, and analyzes impact.",
		"Executes multi-step tasks: scaffolding, refactoring, and validation.",
		"a b c d e f g h i j k l m n o p q r s t u v w x y z",
		"Supercalifragilisticexpialidocious is a rather long word indeed, isn't it?",
		"Ünïcödé wörds shöüld cöünt as single characters each, not as bytes.",
		strings.Repeat("lorem ipsum dolor sit amet ", 20),
	}
	const width = 28

	for _, in := range inputs {
		lines := Wrap(in, CharFitter(width), 4)
		assert.LessOrEqual(t, len(lines), 4, "input %q", in)
		for _, line := range lines {
			if utf8.RuneCountInString(line) <= width {
				continue
			}
			// Over-width lines must be a single unsplittable word.
			assert.NotContains(t, line, " ", "line %q exceeds width by more than one word", line)
		}
	}
}

type fixedWidth float64

func (f fixedWidth) Measure(s string) float64 { return float64(utf8.RuneCountInString(s)) * float64(f) }

func TestMeasureFitter(t *testing.T) {
	fits := MeasureFitter(fixedWidth(10), 100)
	assert.True(t, fits("ten chars!", 0))
	assert.False(t, fits("eleven char", 0))
	assert.False(t, fits("eleven char", 3))

	lines := Wrap("aaaa bbbb cccc dddd", fits, 0)
	assert.Equal(t, []string{"aaaa bbbb", "cccc dddd"}, lines)
}

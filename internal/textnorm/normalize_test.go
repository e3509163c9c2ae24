package textnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Empty(t *testing.T) {
	n := Normalize("")
	assert.Equal(t, "", n.Text)
	assert.Equal(t, 0, n.OrigOffset(0))
}

func TestNormalize_Lowercases(t *testing.T) {
	n := Normalize("Senior Python Developer")
	assert.Equal(t, "senior python developer", n.Text)
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	n := Normalize("python   and\t\tdocker\n\nexperience")
	assert.Equal(t, "python and docker experience", n.Text)
}

func TestNormalize_PreservesSymbolTokens(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"Experience with C++ and C#", "experience with C++ and C#"},
		{"We use .NET daily", "we use .NET daily"},
		{"CI/CD pipelines", "CI/CD pipelines"},
		{"Node.js services", "Node.js services"},
		{"(C++)", "C++"},
		{"C#,", "C#"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.raw).Text, "raw %q", tt.raw)
	}
}

func TestNormalize_SymbolsAsSeparatorsOutsidePreservedTokens(t *testing.T) {
	// '/' inside an ordinary word splits it.
	n := Normalize("design and/or build")
	assert.Equal(t, "design and or build", n.Text)

	// '.' inside an ordinary word splits it too.
	n = Normalize("e.g. some text")
	assert.Equal(t, "e g some text", n.Text)
}

func TestNormalize_KeepsVersionNumbers(t *testing.T) {
	n := Normalize("Python 3.9 required")
	assert.Equal(t, "python 3.9 required", n.Text)
}

func TestNormalize_StripsEdgePunctuation(t *testing.T) {
	n := Normalize("Required: Python, Docker, and AWS.")
	assert.Equal(t, "required python docker and aws", n.Text)
}

func TestNormalize_OffsetSideTable(t *testing.T) {
	raw := "Hello   World"
	n := Normalize(raw)
	require.Equal(t, "hello world", n.Text)

	// "world" starts at normalized offset 6 and original offset 8.
	idx := strings.Index(n.Text, "world")
	require.Equal(t, 6, idx)
	assert.Equal(t, 8, n.OrigOffset(idx))

	// First byte maps to the start.
	assert.Equal(t, 0, n.OrigOffset(0))
}

func TestNormalize_OffsetsSurvivePunctuationStripping(t *testing.T) {
	raw := "Skills: Python."
	n := Normalize(raw)
	require.Equal(t, "skills python", n.Text)

	idx := strings.Index(n.Text, "python")
	assert.Equal(t, strings.Index(raw, "Python"), n.OrigOffset(idx))
}

func TestIsPreserved(t *testing.T) {
	assert.True(t, IsPreserved("C++"))
	assert.True(t, IsPreserved("c++"))
	assert.True(t, IsPreserved(".net"))
	assert.True(t, IsPreserved("ci/cd"))
	assert.False(t, IsPreserved("python"))
	assert.False(t, IsPreserved(""))
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("must have python experience")
	require.Len(t, tokens, 4)
	assert.Equal(t, Token{Text: "must", Start: 0}, tokens[0])
	assert.Equal(t, Token{Text: "python", Start: 10}, tokens[2])
	assert.Equal(t, 16, tokens[2].End())
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := "Must have 5+ years of Python and AWS. CI/CD a plus."
	first := Normalize(raw)
	second := Normalize(raw)
	assert.Equal(t, first.Text, second.Text)
}

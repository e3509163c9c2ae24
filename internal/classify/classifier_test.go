package classify

import (
	"strings"
	"testing"

	"github.com/jonathan/jobradar/internal/textnorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// occurrenceOf finds the byte range of term in the normalized text.
func occurrenceOf(t *testing.T, text, term string) [2]int {
	t.Helper()
	i := strings.Index(text, term)
	require.GreaterOrEqual(t, i, 0, "term %q not in %q", term, text)
	return [2]int{i, i + len(term)}
}

func votesFor(t *testing.T, raw, term string) (int, int) {
	t.Helper()
	norm := textnorm.Normalize(raw)
	tokens := textnorm.Tokenize(norm.Text)
	sentences := textnorm.SentenceIndex(raw, norm, tokens)
	c := New(0)
	return c.Votes(tokens, [][2]int{occurrenceOf(t, norm.Text, term)}, sentences)
}

func TestVotes_MustHaveCue(t *testing.T) {
	must, nice := votesFor(t, "Python is required for this role", "python")
	assert.Equal(t, 1, must)
	assert.Equal(t, 0, nice)
}

func TestVotes_MultiWordMustCue(t *testing.T) {
	must, nice := votesFor(t, "Must have solid python experience", "python")
	assert.Equal(t, 1, must)
	assert.Equal(t, 0, nice)
}

func TestVotes_NiceToHaveCue(t *testing.T) {
	must, nice := votesFor(t, "Docker is a plus", "docker")
	assert.Equal(t, 0, must)
	assert.Equal(t, 1, nice)

	must, nice = votesFor(t, "Kubernetes experience preferred", "kubernetes")
	assert.Equal(t, 0, must)
	assert.Equal(t, 1, nice)
}

func TestVotes_NoCueNoVote(t *testing.T) {
	must, nice := votesFor(t, "We use Python for data pipelines", "python")
	assert.Equal(t, 0, must)
	assert.Equal(t, 0, nice)
}

func TestVotes_CueOutsideWindowIgnored(t *testing.T) {
	// Cue is more than DefaultWindow tokens away from the term.
	filler := strings.Repeat("word ", DefaultWindow+2)
	must, nice := votesFor(t, "required "+filler+" python", "python")
	assert.Equal(t, 0, must)
	assert.Equal(t, 0, nice)
}

func TestVotes_NearestCueWins(t *testing.T) {
	// "preferred" is adjacent; "required" is further away. The nearer cue
	// decides the vote.
	must, nice := votesFor(t, "required skills listed above but python preferred", "python")
	assert.Equal(t, 0, must)
	assert.Equal(t, 1, nice)
}

func TestVotes_EquidistantCuesCastNoVote(t *testing.T) {
	// One must cue and one nice cue, each exactly one token from the term.
	must, nice := votesFor(t, "required python preferred", "python")
	assert.Equal(t, 0, must)
	assert.Equal(t, 0, nice)
}

func TestVotes_CueInOtherSentenceIgnored(t *testing.T) {
	// "a plus" opens the next sentence and sits nearer to AWS than "must
	// have" does, but cues never cross sentence boundaries.
	must, nice := votesFor(t, "Must have solid AWS experience. Docker is a plus.", "aws")
	assert.Equal(t, 1, must)
	assert.Equal(t, 0, nice)

	must, nice = votesFor(t, "Must have solid AWS experience. Docker is a plus.", "docker")
	assert.Equal(t, 0, must)
	assert.Equal(t, 1, nice)
}

func TestVotes_MultipleOccurrencesEachVote(t *testing.T) {
	raw := "Python is required. Python is also preferred by the team. Python everywhere."
	norm := textnorm.Normalize(raw)
	tokens := textnorm.Tokenize(norm.Text)
	sentences := textnorm.SentenceIndex(raw, norm, tokens)

	var occs [][2]int
	for from := 0; ; {
		i := strings.Index(norm.Text[from:], "python")
		if i < 0 {
			break
		}
		occs = append(occs, [2]int{from + i, from + i + len("python")})
		from = from + i + 1
	}
	require.Len(t, occs, 3)

	// Each occurrence votes within its own sentence: the first sees
	// "required", the second sees "preferred", the third sees no cue.
	must, nice := New(0).Votes(tokens, occs, sentences)
	assert.Equal(t, 1, must)
	assert.Equal(t, 1, nice)
}

func TestVotes_NilSentencesDisablesScoping(t *testing.T) {
	raw := "Python is required. Docker here."
	norm := textnorm.Normalize(raw)
	tokens := textnorm.Tokenize(norm.Text)

	// Without sentence scoping "required" reaches across the boundary.
	must, _ := New(0).Votes(tokens, [][2]int{occurrenceOf(t, norm.Text, "docker")}, nil)
	assert.Equal(t, 1, must)
}

func TestDecide(t *testing.T) {
	assert.Equal(t, MustHave, Decide(2, 1))
	assert.Equal(t, NiceToHave, Decide(1, 2))
	assert.Equal(t, Unclassified, Decide(1, 1))
	assert.Equal(t, Unclassified, Decide(0, 0))
}

func TestNew_WindowDefaulting(t *testing.T) {
	assert.Equal(t, DefaultWindow, New(0).Window())
	assert.Equal(t, DefaultWindow, New(-3).Window())
	assert.Equal(t, 5, New(5).Window())
}

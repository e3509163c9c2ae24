// Package classify decides must-have vs nice-to-have for matched terms by
// scanning a bounded token window around each occurrence for cue phrases.
// Cues only count inside the occurrence's own sentence, so "Docker is a plus."
// never softens a requirement stated in the sentence before it.
package classify

import (
	"strings"

	"github.com/jonathan/jobradar/internal/textnorm"
)

// DefaultWindow is the number of tokens inspected on each side of an
// occurrence. Fixed for the life of a process so classification is
// reproducible across a run.
const DefaultWindow = 10

// Label is the outcome of requirement classification for one term.
type Label int

// Classification outcomes.
const (
	Unclassified Label = iota
	MustHave
	NiceToHave
)

// mustCues and niceCues are the cue phrase sets, already normalized the way
// textnorm renders them.
var mustCues = []string{
	"required",
	"must have",
	"essential",
	"minimum",
	"need to have",
	"strong experience in",
	"mandatory",
	"we require",
}

var niceCues = []string{
	"nice to have",
	"preferred",
	"bonus",
	"a plus",
	"desirable",
	"advantageous",
	"would be great",
	"optional",
}

// Classifier votes on term occurrences using a fixed token window.
type Classifier struct {
	window int
	must   [][]string
	nice   [][]string
}

// New returns a Classifier with the given window size; window <= 0 uses
// DefaultWindow.
func New(window int) *Classifier {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Classifier{
		window: window,
		must:   tokenizeCues(mustCues),
		nice:   tokenizeCues(niceCues),
	}
}

func tokenizeCues(cues []string) [][]string {
	out := make([][]string, len(cues))
	for i, cue := range cues {
		out[i] = strings.Fields(cue)
	}
	return out
}

// Window returns the configured window size in tokens.
func (c *Classifier) Window() int {
	return c.window
}

// Votes tallies one vote per occurrence of a term. tokens must be the full
// token stream of the normalized document; each occurrence is given as its
// byte range in that document. sentences carries the per-token sentence index
// from textnorm.SentenceIndex; cues in a different sentence than the
// occurrence are ignored. A nil sentences slice disables sentence scoping.
func (c *Classifier) Votes(tokens []textnorm.Token, occurrences [][2]int, sentences []int) (mustVotes, niceVotes int) {
	for _, occ := range occurrences {
		switch c.voteAt(tokens, sentences, occ[0], occ[1]) {
		case MustHave:
			mustVotes++
		case NiceToHave:
			niceVotes++
		}
	}
	return mustVotes, niceVotes
}

// voteAt casts the vote for a single occurrence spanning bytes [start, end).
func (c *Classifier) voteAt(tokens []textnorm.Token, sentences []int, start, end int) Label {
	first, last := tokenRange(tokens, start, end)
	if first < 0 {
		return Unclassified
	}

	mustDist := c.nearestCue(tokens, sentences, first, last, c.must)
	niceDist := c.nearestCue(tokens, sentences, first, last, c.nice)

	switch {
	case mustDist < niceDist:
		return MustHave
	case niceDist < mustDist:
		return NiceToHave
	default:
		// Equidistant cues (or none at all) cast no vote.
		return Unclassified
	}
}

// nearestCue returns the token distance to the closest cue phrase within the
// window on either side of the occurrence, or a sentinel past the window when
// none is found. A cue must lie entirely inside the occurrence's sentence.
func (c *Classifier) nearestCue(tokens []textnorm.Token, sentences []int, first, last int, cues [][]string) int {
	best := c.window + 1

	sameSentence := func(i, n int) bool {
		if sentences == nil {
			return true
		}
		for j := i; j < i+n; j++ {
			if sentences[j] != sentences[first] {
				return false
			}
		}
		return true
	}

	lo := max(0, first-c.window)
	for i := lo; i < first; i++ {
		for _, cue := range cues {
			// The whole cue must sit inside the preceding window.
			end := i + len(cue) - 1
			if end >= first {
				continue
			}
			if cueAt(tokens, i, cue) && sameSentence(i, len(cue)) {
				if d := first - end; d < best {
					best = d
				}
			}
		}
	}

	hi := min(len(tokens)-1, last+c.window)
	for i := last + 1; i <= hi; i++ {
		for _, cue := range cues {
			if i+len(cue)-1 > hi {
				continue
			}
			if cueAt(tokens, i, cue) && sameSentence(i, len(cue)) {
				if d := i - last; d < best {
					best = d
				}
			}
		}
	}

	return best
}

// cueAt reports whether the cue token sequence starts at token index i.
func cueAt(tokens []textnorm.Token, i int, cue []string) bool {
	if i+len(cue) > len(tokens) {
		return false
	}
	for j, word := range cue {
		if tokens[i+j].Text != word {
			return false
		}
	}
	return true
}

// tokenRange maps a byte range to the inclusive token index range covering
// it. Returns (-1, -1) when no token overlaps the range.
func tokenRange(tokens []textnorm.Token, start, end int) (int, int) {
	first, last := -1, -1
	for i, tok := range tokens {
		if tok.End() <= start {
			continue
		}
		if tok.Start >= end {
			break
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	return first, last
}

// Decide converts final vote tallies into a label. Equal votes, including
// zero-zero, leave the term unclassified.
func Decide(mustVotes, niceVotes int) Label {
	switch {
	case mustVotes > niceVotes:
		return MustHave
	case niceVotes > mustVotes:
		return NiceToHave
	default:
		return Unclassified
	}
}

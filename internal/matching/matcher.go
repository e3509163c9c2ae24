// Package matching scans normalized job-description text for skill dictionary
// aliases and resolves hits to canonical entries.
package matching

import (
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/jobradar/internal/dictionary"
	"github.com/jonathan/jobradar/internal/textnorm"
)

// Occurrence is one claimed hit of a canonical term in the text.
type Occurrence struct {
	NormStart int // byte offset in normalized text
	NormEnd   int
	OrigStart int // byte offset in the original text
}

// Match aggregates every occurrence of one canonical term in a document.
type Match struct {
	Entry       dictionary.SkillEntry
	EntryIndex  int
	Count       int
	FirstNorm   int
	FirstOrig   int
	Occurrences []Occurrence
}

// Span is a claimed byte range in the original text. The dynamic extractor
// only considers candidates outside claimed spans.
type Span struct {
	Start int
	End   int
}

// Find locates every dictionary alias in the normalized text as a whole-token,
// case-insensitive match. Overlapping hits resolve deterministically: the
// longer alias wins, then the entry declared earlier in the dictionary.
// Matches are returned in dictionary declared order.
func Find(norm textnorm.Normalized, dict *dictionary.Dictionary) ([]Match, []Span) {
	if norm.Text == "" {
		return nil, nil
	}

	lower := strings.ToLower(norm.Text)

	type hit struct {
		start, end int
		entryIndex int
	}
	var hits []hit

	for _, ref := range dict.Aliases() {
		needle := strings.ToLower(ref.Alias)
		for from := 0; ; {
			i := strings.Index(lower[from:], needle)
			if i < 0 {
				break
			}
			start := from + i
			end := start + len(needle)
			if wholeToken(lower, start, end) {
				hits = append(hits, hit{start: start, end: end, entryIndex: ref.EntryIndex})
			}
			from = start + 1
		}
	}

	// Longer alias beats shorter at the same span; dictionary order breaks
	// the remaining ties.
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].start != hits[j].start {
			return hits[i].start < hits[j].start
		}
		if li, lj := hits[i].end-hits[i].start, hits[j].end-hits[j].start; li != lj {
			return li > lj
		}
		return hits[i].entryIndex < hits[j].entryIndex
	})

	byEntry := make(map[int]*Match)
	var claimedEnd int = -1
	var spans []Span

	for _, h := range hits {
		if h.start < claimedEnd {
			continue // overlaps a span already claimed by a better hit
		}
		claimedEnd = h.end

		occ := Occurrence{
			NormStart: h.start,
			NormEnd:   h.end,
			OrigStart: norm.OrigOffset(h.start),
		}
		spans = append(spans, Span{Start: occ.OrigStart, End: norm.OrigOffset(h.end)})

		m, exists := byEntry[h.entryIndex]
		if !exists {
			m = &Match{
				Entry:      dict.Entry(h.entryIndex),
				EntryIndex: h.entryIndex,
				FirstNorm:  h.start,
				FirstOrig:  occ.OrigStart,
			}
			byEntry[h.entryIndex] = m
		}
		m.Count++
		m.Occurrences = append(m.Occurrences, occ)
	}

	matches := make([]Match, 0, len(byEntry))
	for _, m := range byEntry {
		matches = append(matches, *m)
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].EntryIndex < matches[j].EntryIndex
	})

	return matches, spans
}

// wholeToken reports whether text[start:end] is bounded by non-token
// characters. Token characters include the symbols that technology names
// carry, so the alias "c" never matches inside "c++".
func wholeToken(text string, start, end int) bool {
	if start > 0 {
		if isTokenChar(rune(text[start-1])) {
			return false
		}
	}
	if end < len(text) {
		if isTokenChar(rune(text[end])) {
			return false
		}
	}
	return true
}

func isTokenChar(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '+', '#', '.', '/':
		return true
	}
	return false
}

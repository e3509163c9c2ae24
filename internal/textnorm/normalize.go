// Package textnorm converts raw job-description text into a matching-ready
// form. Symbol-bearing technology tokens (C++, C#, .NET, CI/CD) survive
// normalization intact, and every normalized byte keeps a side-table mapping
// back to its offset in the original text so classifiers can report accurate
// surrounding windows.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalized is the matching-ready form of a document plus the
// normalized-to-original offset side table.
type Normalized struct {
	Text    string
	offsets []int // offsets[i] = byte offset in the original of normalized byte i
}

// OrigOffset maps a byte offset in the normalized text back to the original
// text. Offsets at or past the end map to the end of the original.
func (n Normalized) OrigOffset(i int) int {
	if len(n.offsets) == 0 || i < 0 {
		return 0
	}
	if i >= len(n.offsets) {
		return n.offsets[len(n.offsets)-1] + 1
	}
	return n.offsets[i]
}

// part is one emitted run of normalized text anchored to an original offset.
type part struct {
	text string
	off  int
}

// Normalize produces the matching-ready form of raw. Empty input yields an
// empty Normalized value.
func Normalize(raw string) Normalized {
	if raw == "" {
		return Normalized{}
	}

	var out strings.Builder
	offsets := make([]int, 0, len(raw))
	sep := -1 // original offset of a pending separator space

	emit := func(p part) {
		if out.Len() > 0 {
			spaceOff := sep
			if spaceOff < 0 {
				spaceOff = p.off
			}
			out.WriteByte(' ')
			offsets = append(offsets, spaceOff)
		}
		sep = -1
		out.WriteString(p.text)
		for range []byte(p.text) {
			offsets = append(offsets, p.off)
		}
	}

	i := 0
	for i < len(raw) {
		r, size := utf8.DecodeRuneInString(raw[i:])
		if unicode.IsSpace(r) {
			if sep < 0 {
				sep = i
			}
			i += size
			continue
		}

		start := i
		for i < len(raw) {
			r, size := utf8.DecodeRuneInString(raw[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		for _, p := range normalizeWord(raw[start:i], start) {
			emit(p)
		}
	}

	return Normalized{Text: out.String(), offsets: offsets}
}

// normalizeWord normalizes one whitespace-delimited word into zero or more
// emitted parts.
func normalizeWord(word string, wordOff int) []part {
	// Strip edge punctuation, but never break a preserved token apart.
	for len(word) > 0 && !IsPreserved(word) {
		r, size := utf8.DecodeRuneInString(word)
		if !isEdgePunct(r) {
			break
		}
		word = word[size:]
		wordOff += size
	}
	for len(word) > 0 && !IsPreserved(word) {
		r, size := utf8.DecodeLastRuneInString(word)
		if !isEdgePunct(r) {
			break
		}
		word = word[:len(word)-size]
	}
	if word == "" {
		return nil
	}

	if IsPreserved(word) {
		// Preserved tokens keep their symbols and casing.
		return []part{{text: word, off: wordOff}}
	}

	// Non-preserved word: lowercase, and treat +, #, / and non-numeric '.'
	// as separators.
	var parts []part
	segStart := 0
	j := 0
	for j < len(word) {
		r, size := utf8.DecodeRuneInString(word[j:])
		split := isSeparatorSymbol(r) || (r == '.' && !digitAdjacent(word, j, size))
		if split {
			if j > segStart {
				parts = append(parts, part{text: strings.ToLower(word[segStart:j]), off: wordOff + segStart})
			}
			segStart = j + size
		}
		j += size
	}
	if segStart < len(word) {
		parts = append(parts, part{text: strings.ToLower(word[segStart:]), off: wordOff + segStart})
	}
	return parts
}

// isSeparatorSymbol reports symbols that split non-preserved tokens.
func isSeparatorSymbol(r rune) bool {
	return r == '+' || r == '#' || r == '/'
}

func isEdgePunct(r rune) bool {
	switch r {
	case ',', '.', ';', ':', '!', '?', ')', '(', '"', '\'', '[', ']', '*', '•', '-', '–':
		return true
	}
	return false
}

// digitAdjacent reports whether the '.' at byte j sits between two digits
// (a version number like 3.9).
func digitAdjacent(word string, j, size int) bool {
	if j == 0 || j+size >= len(word) {
		return false
	}
	prev := word[j-1]
	next := word[j+size]
	return prev >= '0' && prev <= '9' && next >= '0' && next <= '9'
}

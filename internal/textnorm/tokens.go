package textnorm

import (
	"sort"
	"strings"
	"unicode"
)

// preservedTokens lists symbol-bearing technology tokens that normalization
// must not split or strip. Matching is case-insensitive; the token keeps its
// original casing in the normalized text.
var preservedTokens = []string{
	"C++",
	"C#",
	"F#",
	".NET",
	"ASP.NET",
	"Node.js",
	"React.js",
	"Vue.js",
	"Next.js",
	"Express.js",
	"D3.js",
	"Three.js",
	"CI/CD",
	"TCP/IP",
	"A/B",
	"UI/UX",
	"J2EE",
	"Objective-C",
}

// IsPreserved reports whether s is one of the preserved technology tokens
// (case-insensitive).
func IsPreserved(s string) bool {
	for _, tok := range preservedTokens {
		if strings.EqualFold(s, tok) {
			return true
		}
	}
	return false
}

// Token is one whitespace-delimited token of a normalized text with its byte
// offset into that text.
type Token struct {
	Text  string
	Start int
}

// End returns the byte offset just past the token.
func (t Token) End() int {
	return t.Start + len(t.Text)
}

// SentenceIndex assigns each token the index of the original-text sentence
// containing it. Sentence boundaries are invisible in normalized text, so they
// are recovered from the raw input through the offset side table. A period
// only ends a sentence when followed by whitespace or end of text, which keeps
// "Node.js" and "3.9" inside one sentence.
func SentenceIndex(raw string, norm Normalized, tokens []Token) []int {
	var boundaries []int
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '.':
			if i+1 == len(raw) || raw[i+1] == ' ' || raw[i+1] == '\t' || raw[i+1] == '\n' || raw[i+1] == '\r' {
				boundaries = append(boundaries, i)
			}
		case '!', '?', '\n':
			boundaries = append(boundaries, i)
		}
	}

	ids := make([]int, len(tokens))
	for i, tok := range tokens {
		orig := norm.OrigOffset(tok.Start)
		ids[i] = sort.SearchInts(boundaries, orig)
	}
	return ids
}

// Tokenize splits normalized text into tokens on whitespace. Because
// Normalize collapses whitespace runs, each token maps one-to-one to a
// matcher-visible word.
func Tokenize(text string) []Token {
	var tokens []Token
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, Token{Text: text[start:i], Start: start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, Token{Text: text[start:], Start: start})
	}
	return tokens
}

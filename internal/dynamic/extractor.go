// Package dynamic detects technical terms that are absent from the skill
// dictionary. Candidates are recognized by technology-token shapes (CamelCase
// runs, known acronyms, dot-prefixed names, versioned names) or by adjacency
// to cue phrases, and are categorized by the dictionary terms sharing their
// sentence.
package dynamic

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/jobradar/internal/dictionary"
	"github.com/jonathan/jobradar/internal/matching"
	"github.com/jonathan/jobradar/internal/types"
)

// Candidate is a dynamically detected term with its inferred category.
type Candidate struct {
	Term      string
	Category  types.Category
	FirstOrig int
}

var (
	// CamelCase runs of at least two words (ReactJS, PowerApps).
	camelCaseRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:[A-Z][a-zA-Z]+)+\b`)
	// All-caps acronyms, 2-6 letters.
	acronymRe = regexp.MustCompile(`\b[A-Z]{2,6}\b`)
	// Dot-prefixed framework names (.NET style).
	dotTermRe = regexp.MustCompile(`(?:^|\s)(\.[A-Z][a-zA-Z]+)\b`)
	// Versioned technology names (Python 3, Java 17).
	versionedRe = regexp.MustCompile(`\b([A-Z][a-zA-Z]+)\s+\d+(?:\.\d+)?\b`)
	// Capitalized token right after a cue phrase.
	cueAdjacentRe = regexp.MustCompile(`\b(?i:experience (?:with|in)|knowledge of|proficiency in|familiarity with|working with)\s+([A-Z][A-Za-z0-9+#.]*)`)

	sentenceSplitRe = regexp.MustCompile(`[.!?\n]`)
)

// techAcronyms whitelists all-caps shapes that are genuinely technology
// names. A bare acronym outside this set only qualifies when cue-adjacent.
var techAcronyms = map[string]bool{
	"API": true, "REST": true, "SOAP": true, "SQL": true, "JSON": true,
	"XML": true, "HTML": true, "CSS": true, "HTTP": true, "HTTPS": true,
	"SDK": true, "IDE": true, "CLI": true, "SSH": true, "TLS": true,
	"SSL": true, "JWT": true, "RPC": true, "IOT": true, "ML": true,
	"AI": true, "NLP": true, "ETL": true, "BI": true, "CRM": true,
	"ERP": true, "SAAS": true, "PAAS": true, "IAAS": true, "YAML": true,
	"CSV": true, "DNS": true, "CDN": true, "VPN": true, "LDAP": true,
	"SAML": true, "OIDC": true, "RBAC": true, "TDD": true, "BDD": true,
	"DDD": true, "GRPC": true, "CORS": true, "MQTT": true, "AMQP": true,
	"WCAG": true, "OAUTH": true, "SSO": true, "VM": true, "EC2": true,
	"RDS": true, "SNS": true, "SQS": true, "IAM": true, "VPC": true,
	"EKS": true, "ECS": true, "GKE": true, "AKS": true,
}

// stopwords are common all-caps words and sentence-leading capitals that the
// shape patterns would otherwise pick up.
var stopwords = map[string]bool{
	"THE": true, "AND": true, "FOR": true, "ARE": true, "NOT": true,
	"YOU": true, "ALL": true, "OUR": true, "NEW": true, "WHO": true,
	"USE": true, "CAN": true, "HAS": true, "MAY": true, "ONE": true,
	"IT": true, "WE": true, "AN": true, "AS": true, "AT": true, "BE": true,
	"BY": true, "DO": true, "IF": true, "IN": true, "IS": true, "NO": true,
	"OF": true, "ON": true, "OR": true, "SO": true, "TO": true, "UP": true,
	"CV": true, "EEO": true, "USA": true, "NZ": true, "UK": true,
}

// Extract returns candidate terms found outside the claimed spans, with
// categories inferred from the dictionary matches in the same sentence.
// Terms resolvable through the dictionary are skipped; they belong to the
// dictionary matcher.
func Extract(raw string, claimed []matching.Span, matches []matching.Match, dict *dictionary.Dictionary) []Candidate {
	if raw == "" {
		return nil
	}

	type found struct {
		term  string
		first int
	}
	seen := make(map[string]found) // lowercase term -> first sighting

	record := func(term string, pos int) {
		term = strings.TrimRight(strings.TrimSpace(term), ".,")
		if len(term) < 2 {
			return
		}
		upper := strings.ToUpper(term)
		if stopwords[upper] {
			return
		}
		if _, _, ok := dict.Resolve(term); ok {
			return
		}
		if inClaimed(pos, claimed) {
			return
		}
		key := strings.ToLower(term)
		if prev, ok := seen[key]; !ok || pos < prev.first {
			seen[key] = found{term: term, first: pos}
		}
	}

	for _, loc := range camelCaseRe.FindAllStringIndex(raw, -1) {
		record(raw[loc[0]:loc[1]], loc[0])
	}
	for _, loc := range acronymRe.FindAllStringIndex(raw, -1) {
		term := raw[loc[0]:loc[1]]
		if techAcronyms[strings.ToUpper(term)] {
			record(term, loc[0])
		}
	}
	for _, loc := range dotTermRe.FindAllStringSubmatchIndex(raw, -1) {
		record(raw[loc[2]:loc[3]], loc[2])
	}
	for _, loc := range versionedRe.FindAllStringSubmatchIndex(raw, -1) {
		record(raw[loc[2]:loc[3]], loc[2])
	}
	for _, loc := range cueAdjacentRe.FindAllStringSubmatchIndex(raw, -1) {
		record(raw[loc[2]:loc[3]], loc[2])
	}

	sentences := sentenceRanges(raw)

	candidates := make([]Candidate, 0, len(seen))
	for _, f := range seen {
		candidates = append(candidates, Candidate{
			Term:      f.term,
			Category:  inferCategory(f.first, sentences, matches),
			FirstOrig: f.first,
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].FirstOrig != candidates[j].FirstOrig {
			return candidates[i].FirstOrig < candidates[j].FirstOrig
		}
		return candidates[i].Term < candidates[j].Term
	})
	return candidates
}

func inClaimed(pos int, claimed []matching.Span) bool {
	for _, span := range claimed {
		if pos >= span.Start && pos < span.End {
			return true
		}
	}
	return false
}

type span struct{ start, end int }

// sentenceRanges splits the original text into sentence byte ranges.
func sentenceRanges(raw string) []span {
	var spans []span
	start := 0
	for _, loc := range sentenceSplitRe.FindAllStringIndex(raw, -1) {
		if loc[0] > start {
			spans = append(spans, span{start: start, end: loc[0]})
		}
		start = loc[1]
	}
	if start < len(raw) {
		spans = append(spans, span{start: start, end: len(raw)})
	}
	return spans
}

// inferCategory assigns the majority category of the dictionary terms whose
// occurrences share the candidate's sentence. Ties resolve to the category of
// the earliest occurrence; no co-occurring dictionary term means "other".
func inferCategory(pos int, sentences []span, matches []matching.Match) types.Category {
	var sent span
	ok := false
	for _, s := range sentences {
		if pos >= s.start && pos < s.end {
			sent, ok = s, true
			break
		}
	}
	if !ok {
		return types.CategoryOther
	}

	counts := make(map[types.Category]int)
	earliest := make(map[types.Category]int)
	for _, m := range matches {
		for _, occ := range m.Occurrences {
			if occ.OrigStart >= sent.start && occ.OrigStart < sent.end {
				counts[m.Entry.Category]++
				if cur, ok := earliest[m.Entry.Category]; !ok || occ.OrigStart < cur {
					earliest[m.Entry.Category] = occ.OrigStart
				}
			}
		}
	}
	if len(counts) == 0 {
		return types.CategoryOther
	}

	best := types.CategoryOther
	bestCount, bestFirst := -1, -1
	for cat, count := range counts {
		first := earliest[cat]
		if count > bestCount || (count == bestCount && first < bestFirst) {
			best, bestCount, bestFirst = cat, count, first
		}
	}
	return best
}

// Package scoring merges term variants, weights terms by category, and ranks
// them into the final keyword ordering.
package scoring

import (
	"sort"

	"github.com/jonathan/jobradar/internal/classify"
	"github.com/jonathan/jobradar/internal/dictionary"
	"github.com/jonathan/jobradar/internal/types"
)

// MustHaveBonus is added to the score of every term classified must-have.
const MustHaveBonus = 3.0

// categoryWeights reflect how strongly each category signals a hard skill.
var categoryWeights = map[types.Category]float64{
	types.CategoryTesting:   1.5,
	types.CategoryLanguage:  1.3,
	types.CategoryFramework: 1.2,
	types.CategoryDevOps:    1.1,
	types.CategoryCloud:     1.1,
	types.CategoryPlatform:  1.0,
	types.CategoryData:      1.0,
	types.CategoryOther:     0.7,
}

// Weight returns the scoring weight for a category. Unknown categories weigh
// the same as "other".
func Weight(cat types.Category) float64 {
	if w, ok := categoryWeights[cat]; ok {
		return w
	}
	return categoryWeights[types.CategoryOther]
}

// Term is a scored term accumulated across all of its occurrences.
type Term struct {
	Term      string
	Category  types.Category
	Count     int
	FirstOrig int
	MustVotes int
	NiceVotes int
}

// Label resolves the term's requirement classification from its vote tallies.
func (t Term) Label() classify.Label {
	return classify.Decide(t.MustVotes, t.NiceVotes)
}

// Score is count times category weight, plus the must-have bonus when the
// votes resolve to must-have.
func (t Term) Score() float64 {
	s := float64(t.Count) * Weight(t.Category)
	if t.Label() == classify.MustHave {
		s += MustHaveBonus
	}
	return s
}

// ApplyMerges folds variant terms into their canonical form using the ordered
// rule list. Each rule is applied at most once, and a term produced by a merge
// is never consumed by a later rule. Counts and votes are summed; the first
// occurrence offset is the earliest across the merged variants.
func ApplyMerges(terms []Term, rules []dictionary.MergeRule) []Term {
	byName := make(map[string]int, len(terms))
	for i, t := range terms {
		byName[t.Term] = i
	}
	alive := make([]bool, len(terms))
	for i := range alive {
		alive[i] = true
	}

	out := append([]Term(nil), terms...)
	merged := make(map[string]bool) // terms created or extended by a merge

	for _, rule := range rules {
		var sources []int
		for _, from := range rule.From {
			i, ok := byName[from]
			if !ok || !alive[i] || merged[from] {
				continue
			}
			sources = append(sources, i)
		}
		if len(sources) == 0 {
			continue
		}
		if rule.RequireAll && len(sources) != len(rule.From) {
			continue
		}

		target := Term{Term: rule.Into, Category: rule.Category, FirstOrig: -1}
		if i, ok := byName[rule.Into]; ok && alive[i] {
			target = out[i]
			alive[i] = false
		}
		for _, i := range sources {
			src := out[i]
			target.Count += src.Count
			target.MustVotes += src.MustVotes
			target.NiceVotes += src.NiceVotes
			if target.FirstOrig < 0 || src.FirstOrig < target.FirstOrig {
				target.FirstOrig = src.FirstOrig
			}
			alive[i] = false
		}

		out = append(out, target)
		byName[rule.Into] = len(out) - 1
		alive = append(alive, true)
		merged[rule.Into] = true
	}

	result := make([]Term, 0, len(out))
	for i, t := range out {
		if alive[i] {
			result = append(result, t)
		}
	}
	return result
}

// Rank sorts terms by score descending; equal scores order by the earliest
// first occurrence in the original text, so the ordering is deterministic.
func Rank(terms []Term) []Term {
	out := append([]Term(nil), terms...)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := out[i].Score(), out[j].Score()
		if si != sj {
			return si > sj
		}
		return out[i].FirstOrig < out[j].FirstOrig
	})
	return out
}

// Keywords converts ranked terms into the output keyword list.
func Keywords(ranked []Term) []types.Keyword {
	out := make([]types.Keyword, len(ranked))
	for i, t := range ranked {
		out[i] = types.Keyword{
			Term:     t.Term,
			Category: t.Category,
			Score:    t.Score(),
			Count:    t.Count,
		}
	}
	return out
}

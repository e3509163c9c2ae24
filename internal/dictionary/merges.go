package dictionary

import "github.com/jonathan/jobradar/internal/types"

// MergeRule collapses variant canonical entries into one entry after matching
// and before scoring. Rules are applied once, in declared order, and a merged
// target is never itself a merge source within the same pass.
type MergeRule struct {
	// Into is the canonical name the sources collapse into.
	Into     string
	Category types.Category
	// From lists the source canonical names.
	From []string
	// RequireAll gates the rule on every source being present in the
	// document (the CI+CD case). When false, any present source folds in.
	RequireAll bool
}

// DefaultMergeRules returns the built-in ordered merge-rule table.
func DefaultMergeRules() []MergeRule {
	return []MergeRule{
		// Separately detected CI and CD in one document mean CI/CD.
		{Into: "CI/CD", Category: types.CategoryDevOps, From: []string{"CI", "CD"}, RequireAll: true},
		// Runtime variants collapse into the family name.
		{Into: ".NET", Category: types.CategoryFramework, From: []string{".NET Core", ".NET Framework"}},
		{Into: "Node.js", Category: types.CategoryFramework, From: []string{"NodeJS"}},
	}
}

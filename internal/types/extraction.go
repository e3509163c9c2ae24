// Package types defines the shared data model for job capture and signal extraction.
package types

import "strings"

// Category classifies a skill keyword into a coarse technology family.
type Category string

// Category values cover the skill dictionary's technology families.
const (
	CategoryLanguage  Category = "language"
	CategoryFramework Category = "framework"
	CategoryCloud     Category = "cloud"
	CategoryDevOps    Category = "devops"
	CategoryTesting   Category = "testing"
	CategoryPlatform  Category = "platform"
	CategoryData      Category = "data"
	CategoryOther     Category = "other"
)

// ValidCategory reports whether c is one of the declared categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryLanguage, CategoryFramework, CategoryCloud, CategoryDevOps,
		CategoryTesting, CategoryPlatform, CategoryData, CategoryOther:
		return true
	}
	return false
}

// DegreeLevel is an ordinal education requirement. Higher values outrank lower
// ones, so "Bachelor's required; Master's preferred" resolves to master.
type DegreeLevel int

// Degree levels in ascending ordinal order.
const (
	DegreeNone DegreeLevel = iota
	DegreeAssociate
	DegreeBachelor
	DegreeMaster
	DegreeDoctorate
)

var degreeNames = map[DegreeLevel]string{
	DegreeNone:      "none",
	DegreeAssociate: "associate",
	DegreeBachelor:  "bachelor",
	DegreeMaster:    "master",
	DegreeDoctorate: "doctorate",
}

func (d DegreeLevel) String() string {
	if name, ok := degreeNames[d]; ok {
		return name
	}
	return "none"
}

// ParseDegreeLevel maps a degree name to its ordinal level.
// Unknown names map to DegreeNone.
func ParseDegreeLevel(s string) DegreeLevel {
	for level, name := range degreeNames {
		if name == strings.ToLower(strings.TrimSpace(s)) {
			return level
		}
	}
	return DegreeNone
}

// MarshalJSON encodes the level as its lowercase name.
func (d DegreeLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a lowercase degree name.
func (d *DegreeLevel) UnmarshalJSON(data []byte) error {
	*d = ParseDegreeLevel(strings.Trim(string(data), `"`))
	return nil
}

// ExtractionMethod records which path produced an ExtractionResult.
type ExtractionMethod string

// Extraction methods.
const (
	MethodRuleBased  ExtractionMethod = "rule-based"
	MethodAIEnhanced ExtractionMethod = "ai-enhanced"
)

// Keyword is one scored entry in an ExtractionResult.
// Keywords are ordered by descending score; ties break by earliest first
// occurrence in the source text.
type Keyword struct {
	Term     string   `json:"term"`
	Category Category `json:"category"`
	Score    float64  `json:"score"`
	Count    int      `json:"count"`
}

// ExtractionResult is the structured signal set produced for one job
// description. Exactly one result is live per job; re-extraction replaces the
// prior result wholesale.
type ExtractionResult struct {
	Keywords       []Keyword        `json:"keywords"`
	MustHave       []string         `json:"must_have"`
	NiceToHave     []string         `json:"nice_to_have"`
	YearsRequired  *int             `json:"years_required"`
	DegreeRequired *DegreeLevel     `json:"degree_required"`
	Certifications []string         `json:"certifications"`
	Summary        string           `json:"summary,omitempty"`
	Method         ExtractionMethod `json:"extraction_method"`

	// RoleFamily and Seniority are populated only by the AI path; the
	// deterministic role inferrer consumes them as an override signal.
	RoleFamily string `json:"role_family,omitempty"`
	Seniority  string `json:"seniority,omitempty"`
}

// EmptyResult returns a well-formed result with no signals. Every slice is
// non-nil so callers and JSON consumers never see null collections.
func EmptyResult(method ExtractionMethod) *ExtractionResult {
	return &ExtractionResult{
		Keywords:       []Keyword{},
		MustHave:       []string{},
		NiceToHave:     []string{},
		Certifications: []string{},
		Method:         method,
	}
}

// HasTerm reports whether the keyword list contains term.
func (r *ExtractionResult) HasTerm(term string) bool {
	for _, kw := range r.Keywords {
		if kw.Term == term {
			return true
		}
	}
	return false
}

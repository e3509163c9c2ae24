package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/jobradar/internal/llm"
	"github.com/jonathan/jobradar/internal/requirements"
	"github.com/jonathan/jobradar/internal/roles"
	"github.com/jonathan/jobradar/internal/schemas"
	"github.com/jonathan/jobradar/internal/scoring"
	"github.com/jonathan/jobradar/internal/textnorm"
	"github.com/jonathan/jobradar/internal/types"
)

// aiPayload is the wire shape of a model response, as constrained by the
// embedded extraction schema. Role family and seniority ride along in the same
// object so the whole posting is handled in one call.
type aiPayload struct {
	Keywords       []aiKeyword `json:"keywords"`
	MustHave       []string    `json:"must_have"`
	NiceToHave     []string    `json:"nice_to_have"`
	YearsRequired  *int        `json:"years_required"`
	DegreeRequired *string     `json:"degree_required"`
	Certifications []string    `json:"certifications"`
	RoleFamily     *string     `json:"role_family"`
	Seniority      *string     `json:"seniority"`
	Summary        string      `json:"summary"`
}

type aiKeyword struct {
	Term     string         `json:"term"`
	Category types.Category `json:"category"`
	Count    int            `json:"count"`
}

// aiExtract makes the single model call and converts the validated payload
// into an ExtractionResult. Canonical names and scoring follow the same rules
// as the deterministic pipeline, so the two paths stay interchangeable.
func (e *Engine) aiExtract(ctx context.Context, title, company, jdText string) (*types.ExtractionResult, error) {
	prompt := llm.BuildExtractionPrompt(llm.KeywordExtractionSchema(), promptInput(title, company, jdText))

	raw, err := e.client.GenerateJSON(ctx, prompt, e.tier)
	if err != nil {
		return nil, fmt.Errorf("extraction call failed: %w", err)
	}
	if err := schemas.ValidateExtraction(raw); err != nil {
		return nil, fmt.Errorf("extraction payload rejected: %w", err)
	}

	var payload aiPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("extraction payload unparseable: %w", err)
	}

	return e.fromPayload(&payload, title, jdText), nil
}

// promptInput prefixes the description with the posting's title and company so
// the model can classify role family and seniority from the same input.
func promptInput(title, company, jdText string) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString("Job title: ")
		sb.WriteString(title)
		sb.WriteString("\n")
	}
	if company != "" {
		sb.WriteString("Company: ")
		sb.WriteString(company)
		sb.WriteString("\n")
	}
	if sb.Len() == 0 {
		return jdText
	}
	sb.WriteString("\n")
	sb.WriteString(jdText)
	return sb.String()
}

// fromPayload converts a validated payload, canonicalizing terms through the
// dictionary and recomputing scores so AI output obeys the same scoring model
// as the rule-based path.
func (e *Engine) fromPayload(payload *aiPayload, title, jdText string) *types.ExtractionResult {
	result := types.EmptyResult(types.MethodAIEnhanced)

	canonicalize := func(term string) (string, types.Category, bool) {
		if entry, _, ok := e.dict.Resolve(term); ok {
			return entry.Canonical, entry.Category, true
		}
		return term, "", false
	}

	// must_have membership decides the bonus; a term listed on both sides
	// counts as must-have and is dropped from nice-to-have.
	mustSet := make(map[string]bool)
	for _, term := range payload.MustHave {
		name, _, _ := canonicalize(term)
		mustSet[name] = true
	}
	niceSet := make(map[string]bool)
	for _, term := range payload.NiceToHave {
		name, _, _ := canonicalize(term)
		if !mustSet[name] {
			niceSet[name] = true
		}
	}

	type kw struct {
		term     string
		category types.Category
		count    int
		order    int
	}
	seen := make(map[string]*kw)
	var orderly []*kw
	for i, k := range payload.Keywords {
		name, category, known := canonicalize(k.Term)
		if !known {
			category = k.Category
			if !types.ValidCategory(category) {
				category = types.CategoryOther
			}
		}
		count := k.Count
		if count < 1 {
			count = 1
		}
		if existing, ok := seen[name]; ok {
			existing.count += count
			continue
		}
		entry := &kw{term: name, category: category, count: count, order: i}
		seen[name] = entry
		orderly = append(orderly, entry)
	}

	for _, k := range orderly {
		score := float64(k.count) * scoring.Weight(k.category)
		if mustSet[k.term] {
			score += scoring.MustHaveBonus
		}
		result.Keywords = append(result.Keywords, types.Keyword{
			Term:     k.term,
			Category: k.category,
			Score:    score,
			Count:    k.count,
		})
	}
	sort.SliceStable(result.Keywords, func(i, j int) bool {
		return result.Keywords[i].Score > result.Keywords[j].Score
	})

	for _, k := range result.Keywords {
		if mustSet[k.Term] {
			result.MustHave = append(result.MustHave, k.Term)
		} else if niceSet[k.Term] {
			result.NiceToHave = append(result.NiceToHave, k.Term)
		}
	}

	// Requirement fields fall back to the rule parsers when the model left
	// them empty.
	normText := textnorm.Normalize(jdText).Text
	result.YearsRequired = payload.YearsRequired
	if result.YearsRequired == nil {
		result.YearsRequired = requirements.Years(normText)
	}
	if payload.DegreeRequired != nil {
		if level := types.ParseDegreeLevel(*payload.DegreeRequired); level != types.DegreeNone {
			result.DegreeRequired = &level
		}
	}
	if result.DegreeRequired == nil {
		result.DegreeRequired = requirements.Degree(normText)
	}
	if len(payload.Certifications) > 0 {
		certSeen := make(map[string]bool)
		for _, cert := range payload.Certifications {
			if !certSeen[cert] {
				certSeen[cert] = true
				result.Certifications = append(result.Certifications, cert)
			}
		}
	} else {
		result.Certifications = append(result.Certifications, requirements.Certifications(normText)...)
	}
	result.Summary = payload.Summary

	// Role family and seniority start from the rule-based inferrers; a valid
	// model classification overrides them.
	family, seniority := roles.Infer(title, jdText)
	if payload.RoleFamily != nil {
		if f := types.RoleFamily(*payload.RoleFamily); types.ValidRoleFamily(f) {
			family = f
		}
	}
	if payload.Seniority != nil {
		if s := types.Seniority(*payload.Seniority); types.ValidSeniority(s) {
			seniority = s
		}
	}
	result.RoleFamily = string(family)
	result.Seniority = string(seniority)

	return result
}

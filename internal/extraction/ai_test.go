package extraction

import (
	"context"
	"testing"

	"github.com/jonathan/jobradar/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_AISuccess(t *testing.T) {
	client := &stubClient{json: `{
		"keywords": [
			{"term": "k8s", "category": "devops", "count": 2},
			{"term": "Verilog", "category": "other", "count": 1}
		],
		"must_have": ["k8s"],
		"nice_to_have": ["Verilog"],
		"years_required": 4,
		"degree_required": "bachelor",
		"certifications": ["CKA"],
		"role_family": "devops",
		"seniority": "lead",
		"summary": "Platform role centered on Kubernetes."
	}`}
	engine := New(Options{Client: client})

	result := engine.Extract(context.Background(), "Platform Engineer", "Kubernetes platform work.")

	assert.Equal(t, types.MethodAIEnhanced, result.Method)

	// Aliases canonicalize through the dictionary.
	kube := keywordFor(result, "Kubernetes")
	require.NotNil(t, kube)
	assert.Equal(t, types.CategoryDevOps, kube.Category)
	assert.Equal(t, 2, kube.Count)
	// count * devops weight + must-have bonus
	assert.InDelta(t, 2*1.1+3.0, kube.Score, 1e-9)

	assert.Equal(t, []string{"Kubernetes"}, result.MustHave)
	assert.Equal(t, []string{"Verilog"}, result.NiceToHave)

	require.NotNil(t, result.YearsRequired)
	assert.Equal(t, 4, *result.YearsRequired)
	require.NotNil(t, result.DegreeRequired)
	assert.Equal(t, types.DegreeBachelor, *result.DegreeRequired)
	assert.Equal(t, []string{"CKA"}, result.Certifications)
	assert.Equal(t, "Platform role centered on Kubernetes.", result.Summary)

	// The role classification comes from the same response.
	assert.Equal(t, string(types.RoleDevOps), result.RoleFamily)
	assert.Equal(t, string(types.SeniorityLead), result.Seniority)
}

func TestFromPayload_InvalidRoleFallsBackToRules(t *testing.T) {
	engine := ruleEngine()
	wizard := "wizard"
	principal := "principal"
	payload := &aiPayload{RoleFamily: &wizard, Seniority: &principal}

	result := engine.fromPayload(payload, "Senior QA Engineer", "Selenium required.")

	assert.Equal(t, string(types.RoleTesting), result.RoleFamily)
	assert.Equal(t, string(types.SenioritySenior), result.Seniority)
}

func TestFromPayload_MissingRoleFallsBackToRules(t *testing.T) {
	engine := ruleEngine()
	payload := &aiPayload{}

	result := engine.fromPayload(payload, "Frontend Developer", "React experience.")

	assert.Equal(t, string(types.RoleFrontend), result.RoleFamily)
	assert.Equal(t, string(types.SeniorityUnknown), result.Seniority)
}

func TestFromPayload_MustWinsOverNice(t *testing.T) {
	engine := ruleEngine()
	payload := &aiPayload{
		Keywords: []aiKeyword{
			{Term: "Python", Category: types.CategoryLanguage, Count: 1},
		},
		MustHave:   []string{"Python"},
		NiceToHave: []string{"Python"},
	}

	result := engine.fromPayload(payload, "Engineer", "")

	assert.Equal(t, []string{"Python"}, result.MustHave)
	assert.Empty(t, result.NiceToHave)
}

func TestFromPayload_UnknownCategoryFallsToOther(t *testing.T) {
	engine := ruleEngine()
	payload := &aiPayload{
		Keywords: []aiKeyword{
			{Term: "Frobnicator", Category: "gadgets", Count: 1},
		},
	}

	result := engine.fromPayload(payload, "Engineer", "")

	kw := keywordFor(result, "Frobnicator")
	require.NotNil(t, kw)
	assert.Equal(t, types.CategoryOther, kw.Category)
}

func TestFromPayload_RuleFallbackForMissingRequirements(t *testing.T) {
	engine := ruleEngine()
	payload := &aiPayload{}

	result := engine.fromPayload(payload, "Engineer", "At least 3 years required. Bachelor's degree needed.")

	require.NotNil(t, result.YearsRequired)
	assert.Equal(t, 3, *result.YearsRequired)
	require.NotNil(t, result.DegreeRequired)
	assert.Equal(t, types.DegreeBachelor, *result.DegreeRequired)
}

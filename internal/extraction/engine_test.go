package extraction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonathan/jobradar/internal/dictionary"
	"github.com/jonathan/jobradar/internal/llm"
	"github.com/jonathan/jobradar/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ruleEngine() *Engine {
	return New(Options{})
}

func keywordFor(result *types.ExtractionResult, term string) *types.Keyword {
	for i := range result.Keywords {
		if result.Keywords[i].Term == term {
			return &result.Keywords[i]
		}
	}
	return nil
}

func TestRuleExtract_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		result := ruleEngine().RuleExtract("Engineer", input)

		assert.Equal(t, types.MethodRuleBased, result.Method)
		assert.Empty(t, result.Keywords)
		assert.Empty(t, result.MustHave)
		assert.Empty(t, result.NiceToHave)
		assert.Nil(t, result.YearsRequired)
		assert.Nil(t, result.DegreeRequired)
		assert.Empty(t, result.Certifications)
	}
}

func TestRuleExtract_MustAndNiceClassification(t *testing.T) {
	result := ruleEngine().RuleExtract("Backend Engineer",
		"Must have 5+ years of Python and AWS experience. Docker is a plus.")

	require.NotNil(t, keywordFor(result, "Python"))
	require.NotNil(t, keywordFor(result, "AWS"))
	require.NotNil(t, keywordFor(result, "Docker"))

	assert.ElementsMatch(t, []string{"Python", "AWS"}, result.MustHave)
	assert.Equal(t, []string{"Docker"}, result.NiceToHave)

	require.NotNil(t, result.YearsRequired)
	assert.Equal(t, 5, *result.YearsRequired)
}

func TestRuleExtract_MergesVariants(t *testing.T) {
	result := ruleEngine().RuleExtract("DevOps Engineer",
		"You will own our CI setup and the CD rollout process using Jenkins.")

	assert.NotNil(t, keywordFor(result, "CI/CD"))
	assert.Nil(t, keywordFor(result, "CI"))
	assert.Nil(t, keywordFor(result, "CD"))

	merged := keywordFor(result, "CI/CD")
	require.NotNil(t, merged)
	assert.Equal(t, 2, merged.Count)
}

func TestRuleExtract_DegreeHighestOrdinalWins(t *testing.T) {
	result := ruleEngine().RuleExtract("Engineer",
		"Bachelor's degree required; Master's preferred.")

	require.NotNil(t, result.DegreeRequired)
	assert.Equal(t, types.DegreeMaster, *result.DegreeRequired)
}

func TestRuleExtract_Idempotent(t *testing.T) {
	text := `Senior QA Engineer wanted. Must have strong experience in Selenium and Cypress.
5+ years of testing experience required. Knowledge of Playwright is a plus.
Bachelor's degree required. ISTQB certification preferred. Python, CI and CD exposure helps.`

	first := ruleEngine().RuleExtract("Senior QA Engineer", text)
	second := ruleEngine().RuleExtract("Senior QA Engineer", text)
	assert.Equal(t, first, second)
}

func TestRuleExtract_AliasSoundness(t *testing.T) {
	dict := dictionary.Default()
	// Merges are disabled so variant entries like ".NET Core" stay under
	// their own canonical name.
	engine := New(Options{MergeRules: []dictionary.MergeRule{}})
	for _, ref := range dict.Aliases() {
		entry := dict.Entry(ref.EntryIndex)
		result := engine.RuleExtract("Engineer", "We work with "+ref.Alias+" daily.")

		require.True(t, result.HasTerm(entry.Canonical),
			"alias %q did not resolve to %q", ref.Alias, entry.Canonical)
	}
}

func TestRuleExtract_Disjointness(t *testing.T) {
	texts := []string{
		"Python required. Python is a plus.",
		"Must have Docker. Docker preferred. Docker required.",
		"Kubernetes essential, Kubernetes desirable, Kubernetes experience.",
	}
	for _, text := range texts {
		result := ruleEngine().RuleExtract("Engineer", text)
		for _, m := range result.MustHave {
			assert.NotContains(t, result.NiceToHave, m, "text %q", text)
		}
	}
}

func TestRuleExtract_MonotonicScoring(t *testing.T) {
	base := ruleEngine().RuleExtract("Engineer", "Python experience required.")
	more := ruleEngine().RuleExtract("Engineer", "Python experience required. Python is required here too.")

	baseKw := keywordFor(base, "Python")
	moreKw := keywordFor(more, "Python")
	require.NotNil(t, baseKw)
	require.NotNil(t, moreKw)
	assert.GreaterOrEqual(t, moreKw.Score, baseKw.Score)
}

func TestRuleExtract_OrderingByScore(t *testing.T) {
	result := ruleEngine().RuleExtract("Engineer",
		"Selenium required. Selenium again. We also mention Confluence once.")

	require.GreaterOrEqual(t, len(result.Keywords), 2)
	for i := 1; i < len(result.Keywords); i++ {
		assert.GreaterOrEqual(t, result.Keywords[i-1].Score, result.Keywords[i].Score)
	}
	assert.Equal(t, "Selenium", result.Keywords[0].Term)
}

func TestRuleExtract_DynamicTermPickedUp(t *testing.T) {
	result := ruleEngine().RuleExtract("Engineer",
		"Experience with PowerApps required alongside Python.")

	dyn := keywordFor(result, "PowerApps")
	require.NotNil(t, dyn)
	assert.Contains(t, result.MustHave, "PowerApps")
}

func TestRuleExtract_Certifications(t *testing.T) {
	result := ruleEngine().RuleExtract("Platform Engineer",
		"A Certified Kubernetes Administrator credential is desirable.")

	assert.Equal(t, []string{"CKA"}, result.Certifications)
}

func TestRuleExtract_RoleAndSeniority(t *testing.T) {
	result := ruleEngine().RuleExtract("Senior QA Engineer", "Selenium required.")

	assert.Equal(t, string(types.RoleTesting), result.RoleFamily)
	assert.Equal(t, string(types.SenioritySenior), result.Seniority)
}

// stubClient fakes the LLM client, recording each call's prompt and whether
// its context carried a deadline.
type stubClient struct {
	json  string
	err   error
	delay time.Duration

	calls      int
	lastPrompt string
	deadlines  []bool
}

func (s *stubClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	_, hasDeadline := ctx.Deadline()
	s.deadlines = append(s.deadlines, hasDeadline)
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.delay):
		}
	}
	return s.json, s.err
}

func (s *stubClient) GetModel(tier llm.ModelTier) string { return "stub" }
func (s *stubClient) Close() error                       { return nil }

func TestExtract_NoClientUsesRules(t *testing.T) {
	result := New(Options{}).Extract(context.Background(), "Engineer", "Python required.")
	assert.Equal(t, types.MethodRuleBased, result.Method)
}

func TestExtract_FallbackOnTransportError(t *testing.T) {
	client := &stubClient{err: errors.New("connection refused")}
	engine := New(Options{Client: client})

	result := engine.Extract(context.Background(), "Engineer", "Python required.")

	assert.Equal(t, types.MethodRuleBased, result.Method)
	assert.True(t, result.HasTerm("Python"))
}

func TestExtract_FallbackOnTimeout(t *testing.T) {
	client := &stubClient{json: `{}`, delay: 200 * time.Millisecond}
	engine := New(Options{Client: client, AITimeout: 20 * time.Millisecond})

	start := time.Now()
	result := engine.Extract(context.Background(), "Engineer", "Python required.")

	assert.Equal(t, types.MethodRuleBased, result.Method)
	assert.True(t, result.HasTerm("Python"))
	assert.Less(t, time.Since(start), 150*time.Millisecond)
}

func TestExtract_FallbackOnInvalidPayload(t *testing.T) {
	client := &stubClient{json: `{"keywords": "not-an-array"}`}
	engine := New(Options{Client: client})

	result := engine.Extract(context.Background(), "Engineer", "Python required.")
	assert.Equal(t, types.MethodRuleBased, result.Method)
}

func TestExtract_SingleAttemptNoRetry(t *testing.T) {
	client := &stubClient{err: errors.New("rate limited")}
	engine := New(Options{Client: client})

	engine.Extract(context.Background(), "Engineer", "Python required.")
	assert.Equal(t, 1, client.calls)
}

func TestExtract_SuccessMakesExactlyOneCall(t *testing.T) {
	// A successful extraction covers keywords, requirements, and the role
	// classification with one bounded outbound call.
	client := &stubClient{json: `{
		"keywords": [{"term": "Python", "category": "language", "count": 1}],
		"must_have": ["Python"],
		"nice_to_have": [],
		"role_family": "fullstack",
		"seniority": "senior"
	}`}
	engine := New(Options{Client: client})

	result := engine.Extract(context.Background(), "Engineer", "Python required.")

	assert.Equal(t, types.MethodAIEnhanced, result.Method)
	assert.Equal(t, 1, client.calls)
	require.Len(t, client.deadlines, 1)
	assert.True(t, client.deadlines[0], "model call must carry a deadline")
}

func TestExtractJob_PromptCarriesTitleAndCompany(t *testing.T) {
	client := &stubClient{json: `{"keywords": [], "must_have": [], "nice_to_have": []}`}
	engine := New(Options{Client: client})

	job := &types.Job{
		Title:   "Staff Data Engineer",
		Company: "Initech",
		JDText:  "Spark pipelines at scale.",
	}
	engine.ExtractJob(context.Background(), job)

	assert.Contains(t, client.lastPrompt, "Staff Data Engineer")
	assert.Contains(t, client.lastPrompt, "Initech")
	assert.Contains(t, client.lastPrompt, "Spark pipelines at scale.")
}

func TestExtract_EmptyInputSkipsAI(t *testing.T) {
	client := &stubClient{json: `{}`}
	engine := New(Options{Client: client})

	result := engine.Extract(context.Background(), "Engineer", "   ")
	assert.Equal(t, types.MethodRuleBased, result.Method)
	assert.Zero(t, client.calls)
}

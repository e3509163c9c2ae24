// Package extraction runs the keyword extraction pipeline for one job
// description: normalization, dictionary matching, requirement classification,
// dynamic term detection, variant merging, scoring, and the requirement
// parsers. An optional AI-enhanced path wraps the same contract; every failure
// on that path falls back to the deterministic rule-based result.
package extraction

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/jonathan/jobradar/internal/classify"
	"github.com/jonathan/jobradar/internal/dictionary"
	"github.com/jonathan/jobradar/internal/dynamic"
	"github.com/jonathan/jobradar/internal/llm"
	"github.com/jonathan/jobradar/internal/matching"
	"github.com/jonathan/jobradar/internal/requirements"
	"github.com/jonathan/jobradar/internal/roles"
	"github.com/jonathan/jobradar/internal/scoring"
	"github.com/jonathan/jobradar/internal/textnorm"
	"github.com/jonathan/jobradar/internal/types"
)

// DefaultAITimeout bounds the single AI extraction attempt.
const DefaultAITimeout = 20 * time.Second

// Options configures an Engine. Zero values select the built-in defaults.
type Options struct {
	Dictionary *dictionary.Dictionary
	MergeRules []dictionary.MergeRule
	Window     int // classification window in tokens

	// Client enables the AI-enhanced path. Nil means rule-based only.
	Client    llm.Client
	Tier      llm.ModelTier
	AITimeout time.Duration
}

// Engine extracts structured signals from job descriptions. It is safe for
// concurrent use.
type Engine struct {
	dict       *dictionary.Dictionary
	rules      []dictionary.MergeRule
	classifier *classify.Classifier

	client    llm.Client
	tier      llm.ModelTier
	aiTimeout time.Duration
}

// New builds an Engine from options.
func New(opts Options) *Engine {
	if opts.Dictionary == nil {
		opts.Dictionary = dictionary.Default()
	}
	if opts.MergeRules == nil {
		opts.MergeRules = dictionary.DefaultMergeRules()
	}
	if opts.Tier == "" {
		opts.Tier = llm.TierLite
	}
	if opts.AITimeout <= 0 {
		opts.AITimeout = DefaultAITimeout
	}
	return &Engine{
		dict:       opts.Dictionary,
		rules:      opts.MergeRules,
		classifier: classify.New(opts.Window),
		client:     opts.Client,
		tier:       opts.Tier,
		aiTimeout:  opts.AITimeout,
	}
}

// Extract produces the extraction result for a posting. When an LLM client is
// configured it makes exactly one bounded AI attempt; keywords, requirements,
// role family, and seniority all come from that single response. Any error,
// timeout, or invalid payload falls back to the rule-based pipeline. The
// returned result is never nil.
func (e *Engine) Extract(ctx context.Context, title, jdText string) *types.ExtractionResult {
	return e.extract(ctx, title, "", jdText)
}

// ExtractJob extracts from a stored job, passing its title and company through
// to the model as context.
func (e *Engine) ExtractJob(ctx context.Context, job *types.Job) *types.ExtractionResult {
	return e.extract(ctx, job.Title, job.Company, job.JDText)
}

func (e *Engine) extract(ctx context.Context, title, company, jdText string) *types.ExtractionResult {
	if strings.TrimSpace(jdText) == "" {
		return types.EmptyResult(types.MethodRuleBased)
	}

	if e.client != nil {
		aiCtx, cancel := context.WithTimeout(ctx, e.aiTimeout)
		result, err := e.aiExtract(aiCtx, title, company, jdText)
		cancel()
		if err == nil {
			return result
		}
		log.Printf("ai extraction failed, falling back to rules: %v", err)
	}

	return e.RuleExtract(title, jdText)
}

// RuleExtract runs the deterministic pipeline. The same input always produces
// the same result.
func (e *Engine) RuleExtract(title, jdText string) *types.ExtractionResult {
	if strings.TrimSpace(jdText) == "" {
		return types.EmptyResult(types.MethodRuleBased)
	}

	norm := textnorm.Normalize(jdText)
	tokens := textnorm.Tokenize(norm.Text)
	sentences := textnorm.SentenceIndex(jdText, norm, tokens)
	matches, claimed := matching.Find(norm, e.dict)

	terms := make([]scoring.Term, 0, len(matches))
	for _, m := range matches {
		occs := make([][2]int, len(m.Occurrences))
		for i, occ := range m.Occurrences {
			occs[i] = [2]int{occ.NormStart, occ.NormEnd}
		}
		mustVotes, niceVotes := e.classifier.Votes(tokens, occs, sentences)
		terms = append(terms, scoring.Term{
			Term:      m.Entry.Canonical,
			Category:  m.Entry.Category,
			Count:     m.Count,
			FirstOrig: m.FirstOrig,
			MustVotes: mustVotes,
			NiceVotes: niceVotes,
		})
	}

	for _, cand := range dynamic.Extract(jdText, claimed, matches, e.dict) {
		count, occs := locateOccurrences(norm.Text, cand.Term)
		mustVotes, niceVotes := e.classifier.Votes(tokens, occs, sentences)
		terms = append(terms, scoring.Term{
			Term:      cand.Term,
			Category:  cand.Category,
			Count:     count,
			FirstOrig: cand.FirstOrig,
			MustVotes: mustVotes,
			NiceVotes: niceVotes,
		})
	}

	ranked := scoring.Rank(scoring.ApplyMerges(terms, e.rules))

	result := types.EmptyResult(types.MethodRuleBased)
	result.Keywords = scoring.Keywords(ranked)
	for _, t := range ranked {
		switch t.Label() {
		case classify.MustHave:
			result.MustHave = append(result.MustHave, t.Term)
		case classify.NiceToHave:
			result.NiceToHave = append(result.NiceToHave, t.Term)
		}
	}

	result.YearsRequired = requirements.Years(norm.Text)
	result.DegreeRequired = requirements.Degree(norm.Text)
	result.Certifications = append(result.Certifications, requirements.Certifications(norm.Text)...)

	family, seniority := roles.Infer(title, jdText)
	result.RoleFamily = string(family)
	result.Seniority = string(seniority)
	return result
}

// locateOccurrences finds whole-token occurrences of a dynamic term in the
// normalized text for classification. Dynamic terms are detected in the
// original casing, so the lookup is case-insensitive. A term the normalizer
// reshaped beyond recognition still counts once.
func locateOccurrences(normText, term string) (int, [][2]int) {
	needle := strings.ToLower(term)
	var occs [][2]int
	for from := 0; ; {
		i := strings.Index(normText[from:], needle)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(needle)
		if wholeToken(normText, start, end) {
			occs = append(occs, [2]int{start, end})
		}
		from = start + 1
	}
	if len(occs) == 0 {
		return 1, nil
	}
	return len(occs), occs
}

func wholeToken(text string, start, end int) bool {
	boundary := func(r byte) bool {
		return r == ' '
	}
	if start > 0 && !boundary(text[start-1]) {
		return false
	}
	if end < len(text) && !boundary(text[end]) {
		return false
	}
	return true
}

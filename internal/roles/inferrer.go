// Package roles infers a posting's role family and seniority level from its
// title and body. The title is the stronger signal; body text is only
// consulted when the title carries no usable cue.
package roles

import (
	"strings"

	"github.com/jonathan/jobradar/internal/types"
)

// familyRule maps title cue phrases to a role family. Rules are checked in
// declared order; the first rule with a cue present in the title wins.
type familyRule struct {
	family types.RoleFamily
	cues   []string
}

var familyRules = []familyRule{
	{types.RoleTesting, []string{
		"test engineer", "qa engineer", "quality assurance", "software tester",
		"test automation", "qa analyst", "test analyst", "quality engineer",
		"automation tester", "manual tester", "performance tester",
		"test lead", "qa lead", "test manager",
	}},
	{types.RoleAI, []string{
		"ai engineer", "ai developer", "artificial intelligence",
		"machine learning engineer", "ml engineer", "ai researcher",
		"ai specialist", "ml specialist", "ai architect", "llm engineer",
	}},
	{types.RoleProductManager, []string{
		"product manager", "product owner",
	}},
	{types.RoleBusinessAnalyst, []string{
		"business analyst", "business systems analyst",
	}},
	{types.RoleFullstack, []string{
		"full stack", "fullstack", "full-stack",
		// Backend titles are folded into fullstack.
		"backend", "back-end", "server-side", "api developer",
		"python developer", "java developer", "go developer",
		"node.js developer", ".net developer", "c# developer",
		"ruby developer", "php developer", "scala developer",
	}},
	{types.RoleFrontend, []string{
		"frontend", "front-end", "ui developer", "ui engineer",
		"react developer", "vue developer", "angular developer",
		"javascript developer", "typescript developer", "web developer",
	}},
	{types.RoleDevOps, []string{
		"devops", "dev ops", "sre", "site reliability",
		"infrastructure engineer", "cloud engineer", "platform engineer",
	}},
	{types.RoleData, []string{
		"data engineer", "data scientist", "data analyst", "data architect",
		"analytics engineer",
	}},
	{types.RoleMobile, []string{
		"mobile developer", "mobile engineer", "ios developer",
		"android developer", "react native", "flutter",
	}},
}

// generalDevCues mark a title as a software role without naming a family. A
// title carrying one of these defaults to fullstack when nothing sharper
// matches.
var generalDevCues = []string{
	"software engineer", "software developer", "developer", "programmer",
	"engineer",
}

// InferFamily returns the role family for a title/body pair. Unrecognized
// postings come back as RoleOther.
func InferFamily(title, body string) types.RoleFamily {
	titleLower := strings.ToLower(title)
	for _, rule := range familyRules {
		if containsAny(titleLower, rule.cues) {
			return rule.family
		}
	}

	if containsAny(titleLower, generalDevCues) {
		return types.RoleFullstack
	}

	// Title carried no cue at all; fall back to the body with the same rules.
	bodyLower := strings.ToLower(body)
	for _, rule := range familyRules {
		if containsAny(bodyLower, rule.cues) {
			return rule.family
		}
	}
	return types.RoleOther
}

// assistantCues mark support roles that must not be promoted to senior
// levels by words like "manager" or "lead" appearing in the title.
var assistantCues = []string{"assistant", "coordinator", "intern", "trainee"}

// managerCues distinguish genuine management titles from e.g. "office
// manager".
var managerCues = []string{
	"engineering manager", "product manager", "project manager",
	"development manager", "technical manager", "team manager",
	"software manager", "it manager",
}

// InferSeniority returns the seniority level for a title/body pair.
// Unrecognized postings come back as SeniorityUnknown.
func InferSeniority(title, body string) types.Seniority {
	text := strings.ToLower(title + " " + body)
	isAssistant := containsAny(text, assistantCues)

	if containsAny(text, []string{"principal", "architect", "distinguished", "fellow"}) && !isAssistant {
		return types.SeniorityArchitect
	}
	if containsAny(text, []string{"lead", "head of", "director"}) && !isAssistant {
		return types.SeniorityLead
	}
	if strings.Contains(text, "manager") {
		if isAssistant {
			return types.SeniorityJunior
		}
		if containsAny(text, managerCues) {
			return types.SeniorityManager
		}
		// A bare "manager" title without a management context reads as lead.
		return types.SeniorityLead
	}
	if containsAny(text, []string{"senior", "sr.", "sr ", "experienced", "5+ years", "6+ years", "7+ years", "8+ years"}) {
		return types.SenioritySenior
	}
	if containsAny(text, []string{"intermediate", "mid-level", "mid level", "3+ years", "4+ years"}) {
		return types.SeniorityIntermediate
	}
	if containsAny(text, []string{"junior", "jr.", "jr ", "entry level", "entry-level", "0-2 years", "1-2 years"}) {
		return types.SeniorityJunior
	}
	if containsAny(text, []string{"graduate", "intern", "trainee", "new grad"}) {
		return types.SeniorityGraduate
	}
	if isAssistant {
		return types.SeniorityJunior
	}
	return types.SeniorityUnknown
}

// Infer runs both rule-based inferrers.
func Infer(title, body string) (types.RoleFamily, types.Seniority) {
	return InferFamily(title, body), InferSeniority(title, body)
}

func containsAny(text string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}

// Package requirements extracts years-of-experience, degree, and
// certification requirements from normalized job-description text. Each
// parser is independent of the keyword pipeline.
package requirements

import (
	"regexp"
	"strconv"
)

// yearsRules is the ordered pattern list for years-of-experience. The first
// rule that yields a value wins; later rules are not consulted.
var yearsRules = []*regexp.Regexp{
	// "minimum of 5 years", "minimum 5 years"
	regexp.MustCompile(`\bminimum (?:of )?(\d{1,2}) ?\+? ?(?:years?|yrs?)\b`),
	// "at least 3 years"
	regexp.MustCompile(`\bat least (\d{1,2}) ?(?:years?|yrs?)\b`),
	// "3-5 years" takes the lower bound
	regexp.MustCompile(`\b(\d{1,2}) ?[-–] ?\d{1,2} ?(?:years?|yrs?)\b`),
	// "5 years", "5+ years" (normalization strips the plus)
	regexp.MustCompile(`\b(\d{1,2}) ?\+? ?(?:years?|yrs?)\b`),
}

// Years extracts the required years of experience from normalized text.
// Returns nil when no pattern matches.
func Years(normText string) *int {
	for _, rule := range yearsRules {
		m := rule.FindStringSubmatch(normText)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 0 {
			continue
		}
		return &n
	}
	return nil
}

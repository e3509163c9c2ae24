package requirements

import (
	"regexp"

	"github.com/jonathan/jobradar/internal/types"
)

// degreeAliases maps normalized-text alias phrases to degree levels. When
// several levels appear in one posting the highest ordinal wins, so
// "Bachelor's required, Master's preferred" yields master.
var degreeAliases = []struct {
	alias string
	level types.DegreeLevel
}{
	{"phd", types.DegreeDoctorate},
	{"ph d", types.DegreeDoctorate},
	{"doctorate", types.DegreeDoctorate},
	{"doctoral", types.DegreeDoctorate},

	{"master's", types.DegreeMaster},
	{"masters", types.DegreeMaster},
	{"master", types.DegreeMaster},
	{"msc", types.DegreeMaster},
	{"m sc", types.DegreeMaster},
	{"mba", types.DegreeMaster},

	{"bachelor's", types.DegreeBachelor},
	{"bachelors", types.DegreeBachelor},
	{"bachelor", types.DegreeBachelor},
	{"bsc", types.DegreeBachelor},
	{"b sc", types.DegreeBachelor},
	{"beng", types.DegreeBachelor},
	{"undergraduate degree", types.DegreeBachelor},

	{"associate's degree", types.DegreeAssociate},
	{"associate degree", types.DegreeAssociate},
	{"aas", types.DegreeAssociate},
}

var degreePatterns = buildDegreePatterns()

func buildDegreePatterns() []struct {
	re    *regexp.Regexp
	level types.DegreeLevel
} {
	out := make([]struct {
		re    *regexp.Regexp
		level types.DegreeLevel
	}, len(degreeAliases))
	for i, da := range degreeAliases {
		out[i].re = regexp.MustCompile(`\b` + regexp.QuoteMeta(da.alias) + `\b`)
		out[i].level = da.level
	}
	return out
}

// Degree extracts the highest degree level mentioned in normalized text.
// Returns nil when no degree phrase is present.
func Degree(normText string) *types.DegreeLevel {
	best := types.DegreeNone
	for _, dp := range degreePatterns {
		if dp.level <= best {
			continue
		}
		if dp.re.MatchString(normText) {
			best = dp.level
		}
	}
	if best == types.DegreeNone {
		return nil
	}
	return &best
}

package requirements

import (
	"regexp"
	"sync"

	"github.com/jonathan/jobradar/internal/dictionary"
)

type certPattern struct {
	canonical string
	res       []*regexp.Regexp
}

var (
	certOnce     sync.Once
	certPatterns []certPattern
)

func compiledCertPatterns() []certPattern {
	certOnce.Do(func() {
		for _, entry := range dictionary.Certifications() {
			cp := certPattern{canonical: entry.Canonical}
			for _, form := range entry.AliasForms() {
				cp.res = append(cp.res, regexp.MustCompile(`\b`+regexp.QuoteMeta(form)+`\b`))
			}
			certPatterns = append(certPatterns, cp)
		}
	})
	return certPatterns
}

// Certifications extracts canonical certification names mentioned in
// normalized text. Every match is kept, deduplicated by canonical name, in
// dictionary declared order.
func Certifications(normText string) []string {
	var found []string
	for _, cp := range compiledCertPatterns() {
		for _, re := range cp.res {
			if re.MatchString(normText) {
				found = append(found, cp.canonical)
				break
			}
		}
	}
	return found
}

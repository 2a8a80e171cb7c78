package taxonomy

import "strings"

// defaultDomainIndex is where unclassifiable questions land. Domain 3 (Cloud
// Technology and Services) is empirically the most populous category.
const defaultDomainIndex = 2

// Classifier assigns question text to exactly one domain by keyword
// frequency.
type Classifier struct {
	domains []Domain
}

// NewClassifier builds a classifier over the given domain tables.
func NewClassifier(domains []Domain) *Classifier {
	return &Classifier{domains: domains}
}

// Classify scores each domain by how many of its keywords occur in the text
// (case-insensitive substring match) and returns the name of the highest
// scorer. Ties go to the first domain in table order, which keeps the result
// deterministic. When every domain scores zero the default domain wins.
func (c *Classifier) Classify(text string) string {
	if len(c.domains) == 0 {
		return ""
	}
	lower := strings.ToLower(text)

	best := -1
	bestScore := 0
	for i, d := range c.domains {
		score := 0
		for _, kw := range d.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				score++
			}
		}
		if score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best < 0 {
		best = defaultDomainIndex
		if best >= len(c.domains) {
			best = 0
		}
	}
	return c.domains[best].Name
}

package taxonomy

import (
	"sort"
	"strings"
)

// ServiceExtractor detects mentions of canonical AWS service names in
// question text.
type ServiceExtractor struct {
	services []string
}

// NewServiceExtractor builds an extractor over the canonical catalog.
func NewServiceExtractor(services []string) *ServiceExtractor {
	return &ServiceExtractor{services: services}
}

// Extract returns the canonical names mentioned in the text, sorted and
// deduplicated. A mention counts if the full canonical name appears, or the
// name with its "AWS " / "Amazon " brand prefix stripped, which tolerates
// informal references like "usa S3 para...". Exact substring containment
// only; no fuzzy matching.
func (e *ServiceExtractor) Extract(text string) []string {
	found := make([]string, 0)
	for _, svc := range e.services {
		short := strings.TrimPrefix(strings.TrimPrefix(svc, "Amazon "), "AWS ")
		if strings.Contains(text, svc) || strings.Contains(text, short) {
			found = append(found, svc)
		}
	}
	sort.Strings(found)
	return found
}

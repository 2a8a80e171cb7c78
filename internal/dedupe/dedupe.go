// Package dedupe flags near-duplicate question texts by string similarity.
// It serves the generation path, where a duplicate triggers bounded
// regeneration, and the offline audit of existing question sets.
package dedupe

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	// DefaultThreshold is the similarity ratio above which two question
	// texts count as duplicates.
	DefaultThreshold = 0.7

	// DefaultMaxAttempts bounds regeneration before a duplicate is accepted
	// anyway. Best effort, not a correctness guarantee.
	DefaultMaxAttempts = 3
)

// Similarity computes the case-insensitive sequence-alignment ratio of two
// texts, in [0,1]. 1 means identical after lowercasing.
func Similarity(a, b string) float64 {
	as := strings.Split(strings.ToLower(a), "")
	bs := strings.Split(strings.ToLower(b), "")
	return difflib.NewMatcher(as, bs).Ratio()
}

// Checker keeps every accepted question text and scores new candidates
// against all of them.
type Checker struct {
	threshold float64
	accepted  []string
}

// NewChecker builds a checker; a non-positive threshold falls back to the
// default.
func NewChecker(threshold float64) *Checker {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Checker{threshold: threshold}
}

// Check reports whether the candidate duplicates any accepted text, along
// with the best ratio observed.
func (c *Checker) Check(text string) (bool, float64) {
	best := 0.0
	for _, prev := range c.accepted {
		if r := Similarity(text, prev); r > best {
			best = r
		}
	}
	return best >= c.threshold, best
}

// Add records a text as accepted so future candidates are scored against it.
func (c *Checker) Add(text string) {
	c.accepted = append(c.accepted, text)
}

// Len reports how many texts have been accepted.
func (c *Checker) Len() int {
	return len(c.accepted)
}

// Pair is one near-duplicate hit from an offline audit.
type Pair struct {
	I     int     `json:"i"`
	J     int     `json:"j"`
	Ratio float64 `json:"ratio"`
}

// FindDuplicates scores every pair of texts and returns those at or above
// the threshold, in index order.
func FindDuplicates(texts []string, threshold float64) []Pair {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	var pairs []Pair
	for i := 0; i < len(texts); i++ {
		for j := i + 1; j < len(texts); j++ {
			if r := Similarity(texts[i], texts[j]); r >= threshold {
				pairs = append(pairs, Pair{I: i, J: j, Ratio: r})
			}
		}
	}
	return pairs
}

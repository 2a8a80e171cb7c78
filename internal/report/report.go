// Package report builds the read-only quality summary over an accepted
// question set.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"examparse/internal/exam"
	"examparse/internal/taxonomy"
)

const (
	topServices = 10
	maxNotes    = 20
)

// DomainStat compares the share of questions a domain actually received
// against its official exam weight.
type DomainStat struct {
	Domain     string  `json:"domain"`
	Actual     float64 `json:"actual"`
	Expected   float64 `json:"expected"`
	Difference float64 `json:"difference"`
}

// ServiceCount is one entry of the frequency-ranked service list.
type ServiceCount struct {
	Service string `json:"service"`
	Count   int    `json:"count"`
}

// Report is the aggregated summary of one extraction run. It never mutates
// the records it was built from.
type Report struct {
	TotalBlocks        int            `json:"total_blocks"`
	ValidQuestions     int            `json:"valid_questions"`
	ValidationErrors   int            `json:"validation_errors"`
	DomainDistribution []DomainStat   `json:"domain_distribution"`
	TopServices        []ServiceCount `json:"top_services"`
	ReflectionNotes    []string       `json:"reflection_notes"`
}

// Build aggregates the accepted set against the domain tables. Stats appear
// in table order; services are ranked by count descending, name ascending on
// ties; notes are truncated to the first 20.
func Build(questions []exam.Question, domains []taxonomy.Domain, totalBlocks, errorCount int, notes []string) *Report {
	counts := make(map[string]int)
	serviceCounts := make(map[string]int)
	for _, q := range questions {
		counts[q.Domain]++
		for _, svc := range q.Services {
			serviceCounts[svc]++
		}
	}

	total := len(questions)
	stats := make([]DomainStat, 0, len(domains))
	for _, d := range domains {
		actual := 0.0
		if total > 0 {
			actual = float64(counts[d.Name]) / float64(total) * 100
		}
		stats = append(stats, DomainStat{
			Domain:     d.Name,
			Actual:     round1(actual),
			Expected:   d.Weight,
			Difference: round1(actual - d.Weight),
		})
	}

	ranked := make([]ServiceCount, 0, len(serviceCounts))
	for svc, n := range serviceCounts {
		ranked = append(ranked, ServiceCount{Service: svc, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Service < ranked[j].Service
	})
	if len(ranked) > topServices {
		ranked = ranked[:topServices]
	}

	if len(notes) > maxNotes {
		notes = notes[:maxNotes]
	}

	return &Report{
		TotalBlocks:        totalBlocks,
		ValidQuestions:     total,
		ValidationErrors:   errorCount,
		DomainDistribution: stats,
		TopServices:        ranked,
		ReflectionNotes:    notes,
	}
}

// Save writes the report as indented JSON.
func (r *Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Render prints the human-readable summary.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "📊 Domain distribution:\n")
	for _, s := range r.DomainDistribution {
		fmt.Fprintf(w, "   %s\n", s.Domain)
		fmt.Fprintf(w, "      actual: %.1f%% | expected: %.1f%% | diff: %+.1f%%\n", s.Actual, s.Expected, s.Difference)
	}

	if len(r.TopServices) > 0 {
		fmt.Fprintf(w, "\n🔧 Top services mentioned:\n")
		for _, s := range r.TopServices {
			fmt.Fprintf(w, "   - %s: %d\n", s.Service, s.Count)
		}
	}

	if len(r.ReflectionNotes) > 0 {
		fmt.Fprintf(w, "\n💭 Reflection notes (%d):\n", len(r.ReflectionNotes))
		for _, n := range r.ReflectionNotes {
			fmt.Fprintf(w, "   - %s\n", n)
		}
	}

	fmt.Fprintf(w, "\nBlocks: %d | valid: %d | errors: %d\n", r.TotalBlocks, r.ValidQuestions, r.ValidationErrors)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

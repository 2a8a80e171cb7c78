// Package pipeline wires the scanner, classifier, service extractor and
// validator into the single-pass extraction run.
package pipeline

import (
	"fmt"
	"os"
	"strings"

	"examparse/internal/exam"
	"examparse/internal/parser"
	"examparse/internal/taxonomy"
	"examparse/internal/validate"
)

// Result owns everything one extraction run produced. The slices are written
// by exactly one pass and never revisited.
type Result struct {
	Questions []exam.Question   // accepted records, ids dense and 1-based
	Errors    []exam.ParseError // structural rejections
	Notes     []string          // soft quality notes, reporting only
	Blocks    int               // question blocks seen before validation
}

// Pipeline runs scan -> classify -> extract services -> validate over an
// in-memory document. Single-threaded and deterministic: the same input
// always yields the same records and ids.
type Pipeline struct {
	scanner    *parser.Scanner
	classifier *taxonomy.Classifier
	services   *taxonomy.ServiceExtractor
}

// New builds a pipeline over the given taxonomy tables.
func New(tax taxonomy.Taxonomy) *Pipeline {
	return &Pipeline{
		scanner:    parser.NewScanner(),
		classifier: taxonomy.NewClassifier(tax.Domains),
		services:   taxonomy.NewServiceExtractor(tax.Services),
	}
}

// RunFile reads the whole document into memory and runs the pipeline over
// it. An unreadable input is the only fatal failure mode; per-block problems
// are accumulated on the Result instead.
func (p *Pipeline) RunFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}
	return p.Run(strings.Split(string(data), "\n")), nil
}

// Run extracts records from the ordered line sequence.
func (p *Pipeline) Run(lines []string) *Result {
	res := &Result{}

	p.scanner.Scan(lines, func(b *parser.Block) {
		res.Blocks++

		combined := b.CombinedText()
		services := p.services.Extract(combined)
		if len(services) == 0 {
			res.Notes = append(res.Notes, fmt.Sprintf("Q%d: no AWS services mentioned", b.Number))
		}

		if errs := validate.Check(b); len(errs) > 0 {
			res.Errors = append(res.Errors, errs...)
			return
		}

		res.Questions = append(res.Questions, exam.Question{
			ID:             len(res.Questions) + 1,
			OriginalNumber: b.Number,
			Domain:         p.classifier.Classify(combined),
			Question:       b.Question,
			Options:        copyOptions(b.Options),
			CorrectAnswer:  b.CorrectAnswer,
			Explanation:    b.Explanation,
			Services:       services,
		})
	})

	return res
}

func copyOptions(options map[string]string) map[string]string {
	out := make(map[string]string, len(options))
	for k, v := range options {
		out[k] = v
	}
	return out
}

// Package validate decides whether a scanned question block is structurally
// complete enough to promote to a record.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"examparse/internal/exam"
	"examparse/internal/parser"
)

// Check returns every hard error found on a closed block, not just the
// first. An empty result means the block may be promoted. Rejection is never
// fatal to the overall scan; callers record the errors and move on.
func Check(b *parser.Block) []exam.ParseError {
	var errs []exam.ParseError
	add := func(format string, args ...interface{}) {
		errs = append(errs, exam.ParseError{
			Number:  b.Number,
			Message: fmt.Sprintf("Q%d: ", b.Number) + fmt.Sprintf(format, args...),
		})
	}

	if len(b.Options) != len(exam.Letters) {
		add("has %d options (needs %d)", len(b.Options), len(exam.Letters))
	} else if !hasExactLetters(b.Options) {
		add("incomplete option set [%s]", joinKeys(b.Options))
	}

	if b.CorrectAnswer == "" {
		add("no correct answer marked")
	} else if _, ok := b.Options[b.CorrectAnswer]; !ok {
		add("correct answer %q is not an option", b.CorrectAnswer)
	}

	return errs
}

func hasExactLetters(options map[string]string) bool {
	if len(options) != len(exam.Letters) {
		return false
	}
	for _, letter := range exam.Letters {
		if _, ok := options[letter]; !ok {
			return false
		}
	}
	return true
}

func joinKeys(options map[string]string) string {
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, " ")
}

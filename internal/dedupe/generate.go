package dedupe

import (
	"context"

	"examparse/internal/exam"
)

// Generator produces one candidate question for a domain/topic pair. The
// extraction tool ships no network implementation; callers plug in their
// own.
type Generator interface {
	Generate(ctx context.Context, domain, topic string) (exam.Question, error)
}

// Outcome says how a generated question cleared the duplicate check.
type Outcome int

const (
	// Accepted means the candidate was unique within the threshold.
	Accepted Outcome = iota
	// AcceptedDuplicate means retries were exhausted and the duplicate was
	// kept anyway rather than lose throughput. Callers can log, discard or
	// escalate.
	AcceptedDuplicate
)

// Result is the observable outcome of one bounded-retry generation.
type Result struct {
	Question  exam.Question
	Outcome   Outcome
	Attempts  int
	BestRatio float64
}

// GenerateUnique asks the generator for a question, retrying up to
// maxAttempts times while the candidate duplicates an already-accepted text.
// The last candidate is always recorded with the checker and returned; if it
// was still a duplicate the Result says so explicitly.
func GenerateUnique(ctx context.Context, gen Generator, c *Checker, domain, topic string, maxAttempts int) (Result, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	var (
		q    exam.Question
		dup  bool
		best float64
	)
	attempts := 0
	for attempts < maxAttempts {
		var err error
		q, err = gen.Generate(ctx, domain, topic)
		if err != nil {
			return Result{Attempts: attempts + 1}, err
		}
		attempts++

		dup, best = c.Check(q.Question)
		if !dup {
			break
		}
	}

	c.Add(q.Question)

	res := Result{Question: q, Attempts: attempts, BestRatio: best}
	if dup {
		res.Outcome = AcceptedDuplicate
	}
	return res, nil
}

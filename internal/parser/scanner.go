package parser

import "strings"

type state int

const (
	stateScanning state = iota
	stateOptions
	stateExplanation
)

// Scanner walks a document line by line and assembles question blocks. At
// most one block is open at a time; a block closes when the next question
// header appears or the input ends.
type Scanner struct{}

func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan makes a single forward pass over the input and streams every opened
// block through onBlock, in document order. The final open block is flushed
// once after the loop ends, mirroring the flush a new header triggers, so
// the last question is never dropped.
func (s *Scanner) Scan(lines []string, onBlock func(*Block)) {
	cur := NewCursor(lines)

	var (
		st             = stateScanning
		block          *Block
		promptComplete bool
		sawMarker      bool
		collecting     bool
	)

	flush := func() {
		if block != nil {
			onBlock(block)
			block = nil
		}
	}

	open := func(ln Line) {
		flush()
		block = newBlock(ln.Number, ln.Text)
		promptComplete = strings.Contains(ln.Text, "?")
		sawMarker = false
		collecting = false
		st = stateOptions
	}

	beginExplanation := func(ln Line) {
		block.ResolveAnswer(ln.Text)
		if ln.Text != "" {
			block.AppendExplanation(ln.Text)
		}
		st = stateExplanation
		sawMarker = true
		collecting = true
	}

	for {
		raw, ok := cur.Next()
		if !ok {
			break
		}
		ln := Classify(raw)

		if ln.Kind == KindQuestionHeader {
			open(ln)
			continue
		}

		switch st {
		case stateScanning:
			// No open block; everything up to the first header is noise.

		case stateOptions:
			switch ln.Kind {
			case KindOption:
				block.SetOption(ln.Letter, ln.Text)
				promptComplete = true
				if len(block.Options) == len(letters) {
					st = stateExplanation
				}
			case KindPlain:
				// A long prompt wraps until an option line or a literal
				// question mark, whichever comes first.
				if len(block.Options) == 0 {
					if !promptComplete {
						block.AppendQuestion(ln.Text)
						if strings.Contains(ln.Text, "?") {
							promptComplete = true
						}
					}
					continue
				}
				// With an incomplete option set this is a wrapped option,
				// not a new field.
				block.AppendOption(ln.Text)
			case KindAnswerMarker:
				beginExplanation(ln)
			case KindSectionMarker, KindDivider:
				// Before the first option this is margin noise inside the
				// prompt; after one it closes the option run.
				if len(block.Options) > 0 {
					st = stateExplanation
				}
			case KindNote, KindBlank:
				// Glyph call-outs and blanks never extend a prompt or option.
			}

		case stateExplanation:
			switch ln.Kind {
			case KindAnswerMarker:
				if !sawMarker {
					beginExplanation(ln)
				} else if collecting && ln.Text != "" {
					block.AppendExplanation(ln.Text)
				}
			case KindPlain, KindOption:
				// Explanations often enumerate "A) ..." again; that is prose
				// here, not a new option.
				if collecting {
					block.AppendExplanation(strings.TrimSpace(raw))
				}
			case KindBlank:
				collecting = false
			case KindSectionMarker, KindDivider:
				collecting = false
			case KindNote:
				// Distractor and margin call-outs are structural noise.
			}
		}
	}

	flush()
}

var letters = []string{"A", "B", "C", "D"}

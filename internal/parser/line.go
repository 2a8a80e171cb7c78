package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// Glyphs used by the source documents. The correct glyph marks the right
// option inline, the answer glyph opens the explanation section, the
// distractor and section glyphs are structural noise.
const (
	glyphCorrect    = "✅"
	glyphAnswer     = "✔"
	glyphDistractor = "❌"
	glyphSection    = "📌"
)

// Kind classifies a single input line before the state machine acts on it.
type Kind int

const (
	KindPlain Kind = iota
	KindBlank
	KindQuestionHeader
	KindOption
	KindAnswerMarker
	KindSectionMarker
	KindDivider
	KindNote
)

// Line is the classified form of one input line.
type Line struct {
	Kind   Kind
	Text   string // trimmed line content, header/option prefix stripped
	Number int    // question ordinal, KindQuestionHeader only
	Letter string // option letter, KindOption only
}

var (
	questionHeaderRe = regexp.MustCompile(`^(\d+)\.\s*(¿.*)$`)
	optionRe         = regexp.MustCompile(`^([A-D])\)\s*(.*)$`)
	answerMarkerRe   = regexp.MustCompile(`^✔\s*Correcta:\s*(.*)$`)
	subsectionRe     = regexp.MustCompile(`^\d+\.\d+\.`)
)

// Classify maps a raw input line to its tagged kind. It decides only what
// kind of line this is; what to do with it is the scanner's business.
func Classify(raw string) Line {
	line := strings.TrimSpace(raw)

	switch {
	case line == "":
		return Line{Kind: KindBlank}
	case strings.HasPrefix(line, glyphDistractor):
		return Line{Kind: KindNote, Text: line}
	case strings.HasPrefix(line, glyphSection) || strings.HasPrefix(line, "###") || subsectionRe.MatchString(line):
		return Line{Kind: KindSectionMarker, Text: line}
	case strings.HasPrefix(line, "---"):
		return Line{Kind: KindDivider, Text: line}
	}

	if m := questionHeaderRe.FindStringSubmatch(line); m != nil {
		num, err := strconv.Atoi(m[1])
		if err == nil && num > 0 {
			return Line{Kind: KindQuestionHeader, Number: num, Text: strings.TrimSpace(m[2])}
		}
	}

	if m := answerMarkerRe.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindAnswerMarker, Text: strings.TrimSpace(m[1])}
	}
	// Other ✔ lines are margin notes, not answer markers.
	if strings.HasPrefix(line, glyphAnswer) {
		return Line{Kind: KindNote, Text: line}
	}

	if m := optionRe.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindOption, Letter: m[1], Text: strings.TrimSpace(m[2])}
	}

	return Line{Kind: KindPlain, Text: line}
}

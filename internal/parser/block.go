package parser

import (
	"regexp"
	"strings"
)

// Block is the raw, in-progress representation of one question before
// validation. It is mutated only during the scan pass that produced it.
type Block struct {
	Number        int
	Question      string
	Options       map[string]string
	CorrectAnswer string
	Explanation   string

	lastLetter string
}

func newBlock(number int, question string) *Block {
	return &Block{
		Number:   number,
		Question: question,
		Options:  make(map[string]string),
	}
}

// AppendQuestion joins a continuation line onto the prompt with a space.
func (b *Block) AppendQuestion(text string) {
	b.Question += " " + text
}

// SetOption records one lettered option. An embedded correct glyph marks the
// letter as the answer and is stripped from the stored text. A repeated
// letter overwrites; source documents never legitimately repeat one, so the
// last-seen text wins.
func (b *Block) SetOption(letter, text string) {
	if strings.Contains(text, glyphCorrect) {
		b.CorrectAnswer = letter
		text = strings.TrimSpace(strings.ReplaceAll(text, glyphCorrect, ""))
	}
	b.Options[letter] = text
	b.lastLetter = letter
}

// AppendOption attaches a wrapped line to the most recently opened option.
// A correct glyph on the wrapped part still marks that option.
func (b *Block) AppendOption(text string) {
	if b.lastLetter == "" {
		return
	}
	if strings.Contains(text, glyphCorrect) {
		b.CorrectAnswer = b.lastLetter
		text = strings.TrimSpace(strings.ReplaceAll(text, glyphCorrect, ""))
	}
	b.Options[b.lastLetter] += " " + text
}

var answerLetterRe = regexp.MustCompile(`([A-D])\)`)

// ResolveAnswer extracts the correct letter from the answer-marker remainder
// ("C) short repeat of the option"). It only fires when no option carried the
// inline glyph; an already-resolved answer is never overwritten. If neither
// source yields a letter the answer stays empty and validation rejects the
// block later.
func (b *Block) ResolveAnswer(markerText string) {
	if b.CorrectAnswer != "" {
		return
	}
	if m := answerLetterRe.FindStringSubmatch(markerText); m != nil {
		b.CorrectAnswer = m[1]
	}
}

// AppendExplanation joins one line of rationale with a space. Paragraph
// structure is not preserved.
func (b *Block) AppendExplanation(text string) {
	if b.Explanation == "" {
		b.Explanation = text
		return
	}
	b.Explanation += " " + text
}

// CombinedText is the prompt plus all option texts, the surface the domain
// classifier and service extractor score against.
func (b *Block) CombinedText() string {
	parts := make([]string, 0, len(b.Options)+1)
	parts = append(parts, b.Question)
	for _, letter := range []string{"A", "B", "C", "D"} {
		if text, ok := b.Options[letter]; ok {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

package validate

import (
	"testing"

	"examparse/internal/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanOne(t *testing.T, lines []string) *parser.Block {
	t.Helper()
	var blocks []*parser.Block
	parser.NewScanner().Scan(lines, func(b *parser.Block) {
		blocks = append(blocks, b)
	})
	require.Len(t, blocks, 1)
	return blocks[0]
}

func completeBlock(t *testing.T) *parser.Block {
	return scanOne(t, []string{
		"1. ¿Pregunta?",
		"A) a",
		"B) b ✅",
		"C) c",
		"D) d",
	})
}

func TestCheck_ValidBlock(t *testing.T) {
	errs := Check(completeBlock(t))
	assert.Empty(t, errs)
}

func TestCheck_MissingOption(t *testing.T) {
	b := scanOne(t, []string{
		"2. ¿Pregunta?",
		"A) a",
		"B) b ✅",
		"C) c",
	})

	errs := Check(b)
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Number)
	assert.Contains(t, errs[0].Message, "3 options", "the error carries the count of options found")
}

func TestCheck_NoCorrectAnswer(t *testing.T) {
	b := scanOne(t, []string{
		"3. ¿Pregunta?",
		"A) a",
		"B) b",
		"C) c",
		"D) d",
	})

	errs := Check(b)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "no correct answer")
}

func TestCheck_AnswerNotAnOption(t *testing.T) {
	b := &parser.Block{
		Number:        5,
		Question:      "¿Pregunta?",
		Options:       map[string]string{"A": "a", "B": "b", "C": "c", "D": "d"},
		CorrectAnswer: "E",
	}

	errs := Check(b)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, `"E"`)
}

func TestCheck_AllErrorsCollected(t *testing.T) {
	b := scanOne(t, []string{
		"4. ¿Pregunta?",
		"A) a",
		"B) b",
	})

	errs := Check(b)
	require.Len(t, errs, 2, "rejection reports every hard error, not just the first")
	assert.Contains(t, errs[0].Message, "2 options")
	assert.Contains(t, errs[1].Message, "no correct answer")
}

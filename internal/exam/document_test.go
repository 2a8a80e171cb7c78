package exam

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []Question {
	return []Question{
		{
			ID:             1,
			OriginalNumber: 1,
			Domain:         "Domain 3: Cloud Technology and Services",
			Question:       "¿Qué servicio ofrece almacenamiento de objetos escalable?",
			Options:        map[string]string{"A": "Amazon EBS", "B": "Amazon EFS", "C": "Amazon S3", "D": "AWS Storage Gateway"},
			CorrectAnswer:  "C",
			Explanation:    "S3 ofrece almacenamiento de objetos con alta durabilidad.",
			Services:       []string{"Amazon EBS", "Amazon EFS", "Amazon S3", "AWS Storage Gateway"},
		},
		{
			ID:             2,
			OriginalNumber: 3,
			Domain:         "Domain 1: Cloud Concepts",
			Question:       "¿Qué beneficio describe la elasticidad?",
			Options:        map[string]string{"A": "a", "B": "b", "C": "c", "D": "d"},
			CorrectAnswer:  "A",
			Explanation:    "",
			Services:       []string{},
		},
	}
}

func TestQuestionJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(sampleQuestions()[0])
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, field := range []string{"id", "originalNumber", "domain", "question", "options", "correctAnswer", "explanation", "services"} {
		assert.Contains(t, raw, field)
	}
	assert.Len(t, raw, 8)
}

func TestDocumentRoundTrip(t *testing.T) {
	questions := sampleQuestions()
	path := filepath.Join(t.TempDir(), "questions.json")

	doc := NewDocument("AWS Certified Cloud Practitioner", "CLF-C02", "test", questions)
	require.NoError(t, doc.Save(path))

	loaded, err := LoadDocument(path)
	require.NoError(t, err)

	assert.Equal(t, doc.Metadata.Exam, loaded.Metadata.Exam)
	assert.Equal(t, len(questions), loaded.Metadata.TotalQuestions)
	assert.Equal(t, questions, loaded.Questions, "every record must survive the round trip field for field")
}

func TestLoadDocument_MissingFile(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

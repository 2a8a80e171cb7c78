package exam

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Metadata describes the exam a question set belongs to.
type Metadata struct {
	Exam           string `json:"exam"`
	Version        string `json:"version"`
	TotalQuestions int    `json:"total_questions"`
	GeneratedDate  string `json:"generated_date"`
	Source         string `json:"source"`
}

// Document is the persisted question-set file format.
type Document struct {
	Metadata  Metadata   `json:"metadata"`
	Questions []Question `json:"questions"`
}

// NewDocument wraps a question set with metadata about its origin.
func NewDocument(exam, version, source string, questions []Question) *Document {
	return &Document{
		Metadata: Metadata{
			Exam:           exam,
			Version:        version,
			TotalQuestions: len(questions),
			GeneratedDate:  time.Now().Format("2006-01-02"),
			Source:         source,
		},
		Questions: questions,
	}
}

// Save writes the document as indented JSON.
func (d *Document) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal question set: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// LoadDocument reads a question-set file written by Save.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &d, nil
}

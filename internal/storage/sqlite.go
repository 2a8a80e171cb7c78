// Package storage persists extraction results in a local SQLite database.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"examparse/internal/exam"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY,
			original_number INTEGER,
			domain TEXT,
			question TEXT,
			options JSON,
			correct_answer TEXT,
			explanation TEXT,
			services JSON
		);`,
		`CREATE TABLE IF NOT EXISTS parse_errors (
			number INTEGER,
			message TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS notes (
			note TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_questions_domain ON questions(domain);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// SaveResult replaces the stored run with the given records, rejection
// errors and reflection notes in one transaction.
func (s *SQLiteStore) SaveResult(ctx context.Context, questions []exam.Question, errs []exam.ParseError, notes []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// A run owns its tables wholesale; stale rows from a previous run would
	// corrupt the dense id sequence.
	for _, table := range []string{"questions", "parse_errors", "notes"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO questions (id, original_number, domain, question, options, correct_answer, explanation, services)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, q := range questions {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("failed to marshal options for question %d: %w", q.ID, err)
		}
		services, err := json.Marshal(q.Services)
		if err != nil {
			return fmt.Errorf("failed to marshal services for question %d: %w", q.ID, err)
		}
		if _, err := stmt.Exec(q.ID, q.OriginalNumber, q.Domain, q.Question, options, q.CorrectAnswer, q.Explanation, services); err != nil {
			return err
		}
	}

	errStmt, err := tx.PrepareContext(ctx, "INSERT INTO parse_errors (number, message) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer errStmt.Close()

	for _, e := range errs {
		if _, err := errStmt.Exec(e.Number, e.Message); err != nil {
			return err
		}
	}

	noteStmt, err := tx.PrepareContext(ctx, "INSERT INTO notes (note) VALUES (?)")
	if err != nil {
		return err
	}
	defer noteStmt.Close()

	for _, n := range notes {
		if _, err := noteStmt.Exec(n); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadQuestions returns the stored records ordered by id.
func (s *SQLiteStore) LoadQuestions(ctx context.Context) ([]exam.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, original_number, domain, question, options, correct_answer, explanation, services
		FROM questions ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []exam.Question
	for rows.Next() {
		var q exam.Question
		var options, services []byte
		if err := rows.Scan(&q.ID, &q.OriginalNumber, &q.Domain, &q.Question, &options, &q.CorrectAnswer, &q.Explanation, &services); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		if err := json.Unmarshal(options, &q.Options); err != nil {
			return nil, fmt.Errorf("failed to decode options for question %d: %w", q.ID, err)
		}
		if err := json.Unmarshal(services, &q.Services); err != nil {
			return nil, fmt.Errorf("failed to decode services for question %d: %w", q.ID, err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// LoadErrors returns the stored rejection errors in insertion order.
func (s *SQLiteStore) LoadErrors(ctx context.Context) ([]exam.ParseError, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT number, message FROM parse_errors")
	if err != nil {
		return nil, fmt.Errorf("failed to query errors: %w", err)
	}
	defer rows.Close()

	var errs []exam.ParseError
	for rows.Next() {
		var e exam.ParseError
		if err := rows.Scan(&e.Number, &e.Message); err != nil {
			return nil, err
		}
		errs = append(errs, e)
	}
	return errs, rows.Err()
}

// LoadNotes returns the stored reflection notes in insertion order.
func (s *SQLiteStore) LoadNotes(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT note FROM notes")
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

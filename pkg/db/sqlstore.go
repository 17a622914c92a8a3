package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/donalddop/proteinlab/pkg/model"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLStore is the sqlite-backed implementation. The database lives in
// memory, so its contents die with the process just like MemStore's.
type SQLStore struct {
	db *sql.DB
}

const proteinSchema = `
CREATE TABLE IF NOT EXISTS proteins (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	sequence TEXT NOT NULL,
	length INTEGER NOT NULL,
	composition TEXT NOT NULL
);
`

// NewSQLStore opens an in-memory sqlite database and creates the schema.
func NewSQLStore() (*SQLStore, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// A fresh pool connection would see its own empty :memory: database, so
	// pin everything to a single connection. This also serializes writes.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(proteinSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create proteins table: %w", err)
	}
	return &SQLStore{db: db}, nil
}

// Close releases the underlying database.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Create validates the sequence and inserts a new record. AUTOINCREMENT
// keeps ids sequential from 1 and never reused.
func (s *SQLStore) Create(ctx context.Context, name, sequence string) (model.ProteinSequence, error) {
	if err := model.ValidateSequence(sequence); err != nil {
		return model.ProteinSequence{}, err
	}

	record := model.ProteinSequence{
		Name:        name,
		Sequence:    sequence,
		Length:      len(sequence),
		Composition: model.Analyze(sequence),
	}

	composition, err := json.Marshal(record.Composition)
	if err != nil {
		return model.ProteinSequence{}, fmt.Errorf("encode composition: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO proteins (name, sequence, length, composition) VALUES (?, ?, ?, ?)`,
		record.Name, record.Sequence, record.Length, string(composition))
	if err != nil {
		return model.ProteinSequence{}, fmt.Errorf("insert protein: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.ProteinSequence{}, fmt.Errorf("read inserted id: %w", err)
	}
	record.ID = int(id)

	return record, nil
}

// Get returns the record with the given id.
func (s *SQLStore) Get(ctx context.Context, id int) (model.ProteinSequence, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, sequence, length, composition FROM proteins WHERE id = ?`, id)

	record, err := scanProtein(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ProteinSequence{}, fmt.Errorf("%w: sequence %d", model.ErrNotFound, id)
		}
		return model.ProteinSequence{}, fmt.Errorf("fetch protein %d: %w", id, err)
	}
	return record, nil
}

// List returns every record in ascending id order. The slice is never nil.
func (s *SQLStore) List(ctx context.Context) ([]model.ProteinSequence, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, sequence, length, composition FROM proteins ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list proteins: %w", err)
	}
	defer rows.Close()

	records := []model.ProteinSequence{}
	for rows.Next() {
		record, err := scanProtein(rows)
		if err != nil {
			return nil, fmt.Errorf("scan protein: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list proteins: %w", err)
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProtein(row rowScanner) (model.ProteinSequence, error) {
	var record model.ProteinSequence
	var composition []byte
	if err := row.Scan(&record.ID, &record.Name, &record.Sequence, &record.Length, &composition); err != nil {
		return model.ProteinSequence{}, err
	}
	if err := json.Unmarshal(composition, &record.Composition); err != nil {
		return model.ProteinSequence{}, fmt.Errorf("decode composition: %w", err)
	}
	return record, nil
}

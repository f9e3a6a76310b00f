package sqlite

import (
	"context"
	"fmt"

	"github.com/fwojciec/docset"
)

// Ensure IndexService implements docset.IndexService at compile time.
var _ docset.IndexService = (*IndexService)(nil)

// IndexService manages the searchIndex table of a docSet.dsidx database
// in the schema Dash expects.
type IndexService struct {
	db *DB
}

// NewIndexService creates a new IndexService backed by db.
func NewIndexService(db *DB) *IndexService {
	return &IndexService{db: db}
}

// Reset drops and recreates the searchIndex table. The unique anchor
// index makes duplicate (name, type, path) inserts no-ops.
func (s *IndexService) Reset(ctx context.Context) error {
	stmts := []string{
		`DROP TABLE IF EXISTS searchIndex`,
		`CREATE TABLE searchIndex (id INTEGER PRIMARY KEY, name TEXT, type TEXT, path TEXT)`,
		`CREATE UNIQUE INDEX anchor ON searchIndex (name, type, path)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to reset search index: %w", err)
		}
	}
	return nil
}

// CreateEntry inserts a single entry, ignoring duplicates.
func (s *IndexService) CreateEntry(ctx context.Context, entry *docset.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO searchIndex (name, type, path) VALUES (?, ?, ?)`,
		entry.Name, string(entry.Type), entry.Path,
	)
	if err != nil {
		return fmt.Errorf("failed to create index entry: %w", err)
	}
	return nil
}

// CreateEntries inserts a batch of entries in one transaction, ignoring
// duplicates.
func (s *IndexService) CreateEntries(ctx context.Context, entries []*docset.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO searchIndex (name, type, path) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		if _, err := stmt.ExecContext(ctx, entry.Name, string(entry.Type), entry.Path); err != nil {
			return fmt.Errorf("failed to create index entry %q: %w", entry.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit entries: %w", err)
	}
	return nil
}

// CountEntries returns the number of rows in the index.
func (s *IndexService) CountEntries(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM searchIndex`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count index entries: %w", err)
	}
	return count, nil
}

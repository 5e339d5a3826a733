// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists the document corpus in SQLite and serves it back
// in a stable order for snapshot builds.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/course-recommender/pkg/types"
)

const defaultDBPath = "corpus/documents.db"

// Store manages the corpus SQLite database. FetchAll returns documents in
// insertion (rowid) order; that order is the positional key every derived
// structure is addressed by, so it must not change for an unchanged store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the corpus database and its schema, including the
// update_date index used by year filtering at display time.
func Open(cfg types.StoreConfig) (*Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id TEXT NOT NULL UNIQUE,
			title TEXT,
			abstract TEXT,
			categories TEXT,
			submitter TEXT,
			update_date TEXT,
			comments TEXT,
			journal_ref TEXT,
			authors TEXT,
			link TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_update_date ON documents(update_date)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Put upserts a batch of documents in one transaction. Re-inserting an
// existing id replaces its row in place, keeping its position.
func (s *Store) Put(ctx context.Context, docs []types.Document) error {
	if len(docs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO documents (id, title, abstract, categories, submitter, update_date,
			comments, journal_ref, authors, link)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, abstract=excluded.abstract,
			categories=excluded.categories, submitter=excluded.submitter,
			update_date=excluded.update_date, comments=excluded.comments,
			journal_ref=excluded.journal_ref, authors=excluded.authors,
			link=excluded.link`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range docs {
		if d.ID == "" {
			return fmt.Errorf("document with empty id")
		}
		categoriesJSON, _ := json.Marshal(d.Categories)
		_, err := stmt.ExecContext(ctx,
			d.ID, d.Title, d.Abstract, string(categoriesJSON), d.Submitter,
			d.UpdateDate, d.Comments, d.JournalRef, d.Authors, d.Link,
		)
		if err != nil {
			return fmt.Errorf("inserting document %s: %w", d.ID, err)
		}
	}

	return tx.Commit()
}

// FetchAll returns every document in insertion order.
func (s *Store) FetchAll(ctx context.Context) ([]types.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, abstract, categories, submitter, update_date,
			comments, journal_ref, authors, link
		 FROM documents ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []types.Document
	for rows.Next() {
		var (
			d              types.Document
			categoriesJSON sql.NullString
		)
		if err := rows.Scan(
			&d.ID, &d.Title, &d.Abstract, &categoriesJSON, &d.Submitter,
			&d.UpdateDate, &d.Comments, &d.JournalRef, &d.Authors, &d.Link,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if categoriesJSON.Valid && categoriesJSON.String != "" {
			json.Unmarshal([]byte(categoriesJSON.String), &d.Categories)
		}
		docs = append(docs, d)
	}

	return docs, rows.Err()
}

// Count returns the number of stored documents.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM documents`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting documents: %w", err)
	}
	return n, nil
}

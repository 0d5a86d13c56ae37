package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrDocumentNotFound is returned when a named document is not in the store.
var ErrDocumentNotFound = errors.New("corpus: document not found")

// Document describes a stored corpus document. Length counts characters.
type Document struct {
	Id     int64
	Name   string
	Length int
}

// SetupSchema creates the corpus table in the provided database. It is
// idempotent and safe to call on an already-initialized database.
func SetupSchema(db *sql.DB) error {
	const schemaDocuments = `
CREATE TABLE IF NOT EXISTS corpus_documents (
    doc_id INTEGER PRIMARY KEY,
    doc_name TEXT NOT NULL UNIQUE,
    body TEXT NOT NULL
);
`

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.Exec(schemaDocuments); err != nil {
		return fmt.Errorf("could not create corpus schema: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

// Store holds a database connection and the prepared statements used to add,
// list, remove and stream corpus documents.
type Store struct {
	db               *sql.DB
	stmtUpsertDoc    *sql.Stmt
	stmtListDocs     *sql.Stmt
	stmtRemoveDoc    *sql.Stmt
	stmtStreamBodies *sql.Stmt
	logger           *slog.Logger
}

// NewStore prepares the store's statements against db. SetupSchema must have
// been run on db first.
func NewStore(db *sql.DB) (*Store, error) {
	stmtUpsertDoc, err := db.Prepare(`INSERT INTO corpus_documents (doc_name, body) VALUES (?, ?) ON CONFLICT(doc_name) DO UPDATE SET body=excluded.body RETURNING doc_id;`)
	if err != nil {
		return nil, err
	}

	stmtListDocs, err := db.Prepare(`SELECT doc_id, doc_name, length(body) FROM corpus_documents ORDER BY doc_id;`)
	if err != nil {
		return nil, err
	}

	stmtRemoveDoc, err := db.Prepare(`DELETE FROM corpus_documents WHERE doc_name = ?;`)
	if err != nil {
		return nil, err
	}

	stmtStreamBodies, err := db.Prepare(`SELECT body FROM corpus_documents ORDER BY doc_id;`)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:               db,
		stmtUpsertDoc:    stmtUpsertDoc,
		stmtListDocs:     stmtListDocs,
		stmtRemoveDoc:    stmtRemoveDoc,
		stmtStreamBodies: stmtStreamBodies,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// Close releases all prepared statements held by the Store. The database
// itself is left open.
func (s *Store) Close() {
	_ = s.stmtUpsertDoc.Close()
	_ = s.stmtListDocs.Close()
	_ = s.stmtRemoveDoc.Close()
	_ = s.stmtStreamBodies.Close()
}

// SetLogger sets the logger for the Store. By default, all logs are discarded.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Add stores body under name, replacing the body of an existing document with
// the same name. A replaced document keeps its position in the stream.
func (s *Store) Add(ctx context.Context, name, body string) (int64, error) {
	var id int64
	if err := s.stmtUpsertDoc.QueryRowContext(ctx, name, body).Scan(&id); err != nil {
		return 0, fmt.Errorf("could not store document '%s': %w", name, err)
	}

	s.logger.InfoContext(ctx, "Document stored",
		slog.String("doc_name", name),
		slog.Int64("doc_id", id),
		slog.Int("bytes", len(body)),
	)
	return id, nil
}

// AddReader reads r to the end and stores it under name.
func (s *Store) AddReader(ctx context.Context, name string, r io.Reader) (int64, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("could not read document '%s': %w", name, err)
	}
	return s.Add(ctx, name, string(body))
}

// Documents lists every stored document in stream order.
func (s *Store) Documents(ctx context.Context) ([]Document, error) {
	rows, err := s.stmtListDocs.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var docs []Document
	for rows.Next() {
		var doc Document
		if err = rows.Scan(&doc.Id, &doc.Name, &doc.Length); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

// Remove deletes the named document. It returns ErrDocumentNotFound if no
// document has that name.
func (s *Store) Remove(ctx context.Context, name string) error {
	res, err := s.stmtRemoveDoc.ExecContext(ctx, name)
	if err != nil {
		return fmt.Errorf("could not remove document '%s': %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrDocumentNotFound, name)
	}

	s.logger.InfoContext(ctx, "Document removed", slog.String("doc_name", name))
	return nil
}

// Stream returns a character stream over every stored document, in the order
// the documents were first added. Bodies are joined with nothing between them.
// The caller must Close the stream.
func (s *Store) Stream(ctx context.Context) (*Stream, error) {
	rows, err := s.stmtStreamBodies.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not query corpus documents: %w", err)
	}
	return &Stream{rows: rows}, nil
}

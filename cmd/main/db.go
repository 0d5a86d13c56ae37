package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/CTAG07/charkov/pkg/corpus"
)

// initDB opens the database at dataSource with the driver selected at build
// time, creating the parent directory of a file path if needed.
func initDB(dataSource string) (*sql.DB, error) {
	path, _, _ := strings.Cut(dataSource, "?")
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	return sql.Open(driverName, dataSource)
}

// openCorpusStore opens the corpus database, makes sure its schema exists and
// returns a ready Store. The returned close function releases both.
func openCorpusStore(dataSource string, logger *slog.Logger) (*corpus.Store, func(), error) {
	db, err := initDB(dataSource)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err = corpus.SetupSchema(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to setup corpus schema: %w", err)
	}

	store, err := corpus.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("error creating corpus store: %w", err)
	}
	store.SetLogger(logger)

	closeFn := func() {
		store.Close()
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}
	return store, closeFn, nil
}

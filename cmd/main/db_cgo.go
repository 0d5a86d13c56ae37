//go:build cgo_sqlite

package main

import (
	_ "github.com/mattn/go-sqlite3"
)

// driverName is the database/sql driver registered by the cgo SQLite build.
const driverName = "sqlite3"

//go:build !cgo_sqlite

package main

import (
	_ "modernc.org/sqlite"
)

// driverName is the database/sql driver registered by the pure-Go SQLite build.
const driverName = "sqlite"

package main

import (
	"database/sql"
	"os"

	_ "modernc.org/sqlite"
)

var db *sql.DB

// initDB opens the SQLite database used for visitor analytics. The file
// is created on first run.
func initDB() error {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "portfolio.db"
	}
	var err error
	db, err = sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	return db.Ping()
}

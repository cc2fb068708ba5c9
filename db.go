package main

import (
	"database/sql"

	_ "github.com/lib/pq" // PostgreSQL driver
)

var db *sql.DB

// initDB opens the profile-store connection and verifies it with a ping.
func initDB(databaseURL string) error {
	var err error
	db, err = sql.Open("postgres", databaseURL)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		return err
	}
	logger.Infow("database connection established")
	return nil
}

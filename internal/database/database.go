package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool with foreign keys enforced.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS financial_snapshots (
		id TEXT NOT NULL PRIMARY KEY,
		user_id TEXT NOT NULL,
		salary REAL NOT NULL,
		rent REAL NOT NULL,
		food REAL NOT NULL,
		utilities REAL NOT NULL,
		transportation REAL NOT NULL,
		other_expenses REAL NOT NULL,
		target_amount REAL NOT NULL,
		timeframe_months INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users (id)
	);

	CREATE TABLE IF NOT EXISTS user_settings (
		user_id TEXT NOT NULL PRIMARY KEY,
		currency TEXT DEFAULT 'USD',
		city TEXT,
		country TEXT,
		FOREIGN KEY (user_id) REFERENCES users (id)
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}

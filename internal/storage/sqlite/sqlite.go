package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Open connects to the SQLite database at path, creating the file if it does
// not exist. WAL keeps the single writer from blocking cursor reads within a
// tick; busy_timeout covers the window where a checkpoint holds the lock.
func Open(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	return db, nil
}

// InitSchema creates the cursor table if it is absent. Safe to run on every
// startup.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS cursors (
			channel_id    TEXT NOT NULL,
			account_id    TEXT NOT NULL,
			last_tweet_id TEXT NOT NULL,
			PRIMARY KEY (channel_id, account_id)
		)`

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create cursors table: %w", err)
	}
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tweet_relay/internal/domain"
)

type CursorStore struct {
	db *sqlx.DB
}

func NewCursorStore(db *sqlx.DB) *CursorStore {
	return &CursorStore{db: db}
}

// Get returns the last delivered tweet id for (channel, account), or
// ("", false, nil) if the account has never been observed on that channel.
func (s *CursorStore) Get(ctx context.Context, channelID, accountID string) (string, bool, error) {
	var lastID string
	query := `
		SELECT last_tweet_id
		FROM cursors
		WHERE channel_id = ? AND account_id = ?`

	err := s.db.GetContext(ctx, &lastID, query, channelID, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return lastID, true, nil
}

// UpsertBatch writes all cursor advances from one tick in a single
// transaction: either every cursor persists or none does, so a crash mid-tick
// cannot leave the cursor set internally inconsistent. Each entry fully
// replaces any existing row for its (channel, account) key.
func (s *CursorStore) UpsertBatch(ctx context.Context, cursors []domain.Cursor) error {
	if len(cursors) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	query := `
		INSERT INTO cursors (channel_id, account_id, last_tweet_id)
		VALUES (?, ?, ?)
		ON CONFLICT (channel_id, account_id) DO UPDATE SET
			last_tweet_id = excluded.last_tweet_id`

	for _, c := range cursors {
		if _, err := tx.ExecContext(ctx, query, c.ChannelID, c.AccountID, c.LastTweetID); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("upsert cursor for account %s: %w", c.AccountID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cursors: %w", err)
	}
	return nil
}

package domain

import "time"

// Cursor records the last delivered tweet id for one account on one
// delivery channel. Primary key is (ChannelID, AccountID).
type Cursor struct {
	ChannelID   string `db:"channel_id"`
	AccountID   string `db:"account_id"`
	LastTweetID string `db:"last_tweet_id"`
}

// TickStats holds statistics about one relay tick.
type TickStats struct {
	Accounts   int
	Fetched    int
	New        int
	Overflowed int
	Delivered  int
	Duration   time.Duration
}

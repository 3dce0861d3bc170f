package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"tweet_relay/internal/domain"
)

// Timeline fetches the most recent original tweets for one account,
// newest-first, optionally filtered server-side to ids newer than sinceID.
type Timeline interface {
	FetchTimeline(ctx context.Context, account domain.Account, sinceID string, pageSize int) ([]domain.Tweet, error)
}

// Deliverer sends one message to the chat channel and reports the channel's
// identity for cursor keying.
type Deliverer interface {
	Deliver(ctx context.Context, msg domain.Message) error
	ChannelID() string
}

// CursorStore persists last-delivered tweet ids keyed by (channel, account).
type CursorStore interface {
	Get(ctx context.Context, channelID, accountID string) (lastTweetID string, found bool, err error)
	UpsertBatch(ctx context.Context, cursors []domain.Cursor) error
}

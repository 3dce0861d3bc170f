package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"tweet_relay/internal/domain"
)

// RelayService runs one full poll-diff-sort-deliver-commit cycle per Tick
// call across all watched accounts.
type RelayService struct {
	timeline  Timeline
	deliverer Deliverer
	cursors   CursorStore
	accounts  []domain.Account
	pageSize  int
	logger    *slog.Logger
}

func NewRelayService(
	timeline Timeline,
	deliverer Deliverer,
	cursors CursorStore,
	accounts []domain.Account,
	pageSize int,
	logger *slog.Logger,
) *RelayService {
	return &RelayService{
		timeline:  timeline,
		deliverer: deliverer,
		cursors:   cursors,
		accounts:  accounts,
		pageSize:  pageSize,
		logger:    logger.With("component", "relay"),
	}
}

// Tick polls every account once, delivers all newly observed tweets in
// globally ascending id order, and commits every advanced cursor in a single
// batch. Any error aborts the whole tick before the batch commit, so a failed
// tick leaves no cursor changes behind; the caller decides whether the error
// is transient.
//
// Delivery and the cursor commit are not transactional with each other: a
// crash after deliveries but before the commit re-delivers those tweets on
// the next successful tick. Accepted trade-off, not silently worked around.
func (s *RelayService) Tick(ctx context.Context) (*domain.TickStats, error) {
	start := time.Now()
	channelID := s.deliverer.ChannelID()

	var (
		pending    []domain.Tweet
		updates    []domain.Cursor
		overflowed []domain.Account
		fetched    int
	)

	for _, account := range s.accounts {
		lastID, haveCursor, err := s.cursors.Get(ctx, channelID, account.ID)
		if err != nil {
			return nil, fmt.Errorf("get cursor for @%s: %w", account.Handle, err)
		}

		page, err := s.timeline.FetchTimeline(ctx, account, lastID, s.pageSize)
		if err != nil {
			return nil, fmt.Errorf("fetch @%s: %w", account.Handle, err)
		}
		fetched += len(page)

		diff := diffTimeline(lastID, haveCursor, page, s.pageSize)
		if diff.nextCursor == "" {
			// Empty page: nothing fetched, cursor stays untouched.
			continue
		}

		// The cursor advances even when zero tweets are new, so later
		// fetches never reach behind the newest observed id.
		updates = append(updates, domain.Cursor{
			ChannelID:   channelID,
			AccountID:   account.ID,
			LastTweetID: diff.nextCursor,
		})
		pending = append(pending, diff.newTweets...)

		if diff.overflow {
			overflowed = append(overflowed, account)
		}
	}

	sort.Slice(pending, func(i, j int) bool {
		return domain.CompareTweetIDs(pending[i].ID, pending[j].ID) < 0
	})

	for _, account := range overflowed {
		notice := domain.Message{
			Text: fmt.Sprintf("@%s posted more than %d tweets since the last check; only the %d most recent are shown.",
				account.Handle, s.pageSize, s.pageSize),
			DisplayName: account.DisplayName,
			AvatarURL:   account.AvatarURL,
		}
		if err := s.deliverer.Deliver(ctx, notice); err != nil {
			return nil, fmt.Errorf("deliver overflow notice for @%s: %w", account.Handle, err)
		}
	}

	// One awaited delivery at a time keeps channel order identical to the
	// computed order.
	for _, tweet := range pending {
		msg := domain.Message{
			Text:        permalink(tweet),
			DisplayName: tweet.Account.DisplayName,
			AvatarURL:   tweet.Account.AvatarURL,
		}
		if err := s.deliverer.Deliver(ctx, msg); err != nil {
			return nil, fmt.Errorf("deliver tweet %s: %w", tweet.ID, err)
		}
	}

	if len(updates) > 0 {
		if err := s.cursors.UpsertBatch(ctx, updates); err != nil {
			return nil, fmt.Errorf("commit cursors: %w", err)
		}
	}

	stats := &domain.TickStats{
		Accounts:   len(s.accounts),
		Fetched:    fetched,
		New:        len(pending),
		Overflowed: len(overflowed),
		Delivered:  len(pending) + len(overflowed),
		Duration:   time.Since(start),
	}

	s.logger.Info("tick completed",
		"accounts", stats.Accounts,
		"fetched", stats.Fetched,
		"new", stats.New,
		"overflowed", stats.Overflowed,
		"duration", stats.Duration,
	)

	return stats, nil
}

func permalink(t domain.Tweet) string {
	return fmt.Sprintf("https://twitter.com/%s/status/%s", t.Account.Handle, t.ID)
}

package service

import "tweet_relay/internal/domain"

// timelineDiff is the result of diffing one account's fetched page against
// its stored cursor.
type timelineDiff struct {
	// newTweets are the tweets newer than the cursor, in the newest-first
	// order they were fetched.
	newTweets []domain.Tweet
	// nextCursor is the id of the newest fetched tweet. Empty when the page
	// was empty, in which case the cursor must not be touched.
	nextCursor string
	// overflow is set when a full page was entirely newer than the cursor:
	// more new tweets may exist beyond the page boundary.
	overflow bool
}

// diffTimeline selects the tweets from a newest-first page that are strictly
// newer than the stored cursor. A page fetched for an account never before
// observed establishes a baseline: the cursor advances but nothing is
// selected, so a fresh deployment does not flood the channel with history.
//
// Overflow requires the page to be full. Upstream filters by since_id, so
// every page fetched with a cursor is entirely newer than it; only a page
// hitting the size cap can be hiding tweets beyond the boundary.
func diffTimeline(lastID string, haveCursor bool, page []domain.Tweet, pageSize int) timelineDiff {
	if len(page) == 0 {
		return timelineDiff{}
	}

	diff := timelineDiff{nextCursor: page[0].ID}

	if !haveCursor {
		return diff
	}

	// Pages are internally sorted newest-first, so the first id at or below
	// the cursor ends the scan.
	for _, tweet := range page {
		if domain.CompareTweetIDs(tweet.ID, lastID) <= 0 {
			return diff
		}
		diff.newTweets = append(diff.newTweets, tweet)
	}

	// The whole page was newer than the cursor.
	diff.overflow = len(page) >= pageSize
	return diff
}

package twitter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tweet_relay/internal/domain"
)

const DefaultBaseURL = "https://api.twitter.com/2"

// ErrUnavailable marks the transient "service temporarily unavailable"
// condition. The tick driver swallows it and retries on the next timer tick;
// every other error is fatal. There is no in-client retry: the next tick is
// the retry.
var ErrUnavailable = errors.New("twitter service unavailable")

// Config holds Twitter API client configuration.
type Config struct {
	BearerToken string
	BaseURL     string
	Timeout     time.Duration
}

// Client talks to the Twitter API v2 with app-only bearer auth.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	bearerToken string
	logger      *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:     strings.TrimRight(baseURL, "/"),
		bearerToken: cfg.BearerToken,
		logger:      logger.With("source", "twitter"),
	}
}

// ResolveAccounts looks up the configured handles in one batch call and
// returns the accounts in the order the handles were given. Called once at
// startup; the result is immutable afterwards.
func (c *Client) ResolveAccounts(ctx context.Context, handles []string) ([]domain.Account, error) {
	q := url.Values{}
	q.Set("usernames", strings.Join(handles, ","))
	q.Set("user.fields", "profile_image_url")

	reqURL := fmt.Sprintf("%s/users/by?%s", c.baseURL, q.Encode())

	var resp usersResponse
	if err := c.doRequest(ctx, reqURL, &resp); err != nil {
		return nil, fmt.Errorf("resolve accounts: %w", err)
	}

	byHandle := make(map[string]apiUser, len(resp.Data))
	for _, u := range resp.Data {
		byHandle[strings.ToLower(u.Username)] = u
	}

	accounts := make([]domain.Account, 0, len(handles))
	for _, handle := range handles {
		u, ok := byHandle[strings.ToLower(handle)]
		if !ok {
			return nil, fmt.Errorf("resolve accounts: no user found for handle %q", handle)
		}
		accounts = append(accounts, domain.Account{
			ID:          u.ID,
			Handle:      u.Username,
			DisplayName: u.Name,
			AvatarURL:   u.ProfileImageURL,
		})
	}

	c.logger.Debug("resolved accounts", "count", len(accounts))

	return accounts, nil
}

// FetchTimeline returns up to pageSize of the account's most recent original
// tweets, newest-first as the API orders them. Replies and retweets are
// excluded. A non-empty sinceID is passed through so the upstream filters
// server-side; the caller still diffs against its cursor.
func (c *Client) FetchTimeline(ctx context.Context, account domain.Account, sinceID string, pageSize int) ([]domain.Tweet, error) {
	q := url.Values{}
	q.Set("exclude", "replies,retweets")
	q.Set("max_results", strconv.Itoa(pageSize))
	if sinceID != "" {
		q.Set("since_id", sinceID)
	}

	reqURL := fmt.Sprintf("%s/users/%s/tweets?%s", c.baseURL, account.ID, q.Encode())

	var resp timelineResponse
	if err := c.doRequest(ctx, reqURL, &resp); err != nil {
		return nil, fmt.Errorf("fetch timeline for @%s: %w", account.Handle, err)
	}

	tweets := make([]domain.Tweet, 0, len(resp.Data))
	for _, t := range resp.Data {
		tweets = append(tweets, domain.Tweet{
			ID:      t.ID,
			Account: account,
		})
	}

	c.logger.Debug("fetched timeline",
		"handle", account.Handle,
		"since_id", sinceID,
		"tweets", len(tweets),
	)

	return tweets, nil
}

func (c *Client) doRequest(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	req.Header.Set("User-Agent", "TweetRelay/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case isUnavailable(resp.StatusCode):
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func isUnavailable(status int) bool {
	return status == http.StatusBadGateway ||
		status == http.StatusServiceUnavailable ||
		status == http.StatusGatewayTimeout
}

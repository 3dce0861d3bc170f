package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tweet_relay/internal/domain"
)

// Webhook delivers messages to a Discord channel through an incoming
// webhook URL.
type Webhook struct {
	httpClient *http.Client
	webhookURL string
	channelID  string
	logger     *slog.Logger
}

type Config struct {
	WebhookURL string
	Timeout    time.Duration
}

func New(cfg Config, logger *slog.Logger) *Webhook {
	return &Webhook{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		webhookURL: cfg.WebhookURL,
		channelID:  channelIDFromURL(cfg.WebhookURL),
		logger:     logger.With("delivery", "discord"),
	}
}

// ChannelID identifies the delivery channel for cursor keying. It is the
// webhook id segment of the URL, so rotating the webhook token does not
// orphan stored cursors.
func (w *Webhook) ChannelID() string {
	return w.channelID
}

type webhookPayload struct {
	Content   string `json:"content"`
	Username  string `json:"username,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Deliver posts one message to the channel and waits for the response, so
// channel message order matches call order exactly.
func (w *Webhook) Deliver(ctx context.Context, msg domain.Message) error {
	payload := webhookPayload{
		Content:   msg.Text,
		Username:  msg.DisplayName,
		AvatarURL: msg.AvatarURL,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	w.logger.Debug("delivered message", "display_name", msg.DisplayName)

	return nil
}

// channelIDFromURL extracts the webhook id from
// https://discord.com/api/webhooks/{id}/{token}. Falls back to the full URL
// when the path has an unexpected shape.
func channelIDFromURL(webhookURL string) string {
	u, err := url.Parse(webhookURL)
	if err != nil {
		return webhookURL
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, part := range parts {
		if part == "webhooks" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return webhookURL
}

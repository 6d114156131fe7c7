package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// SlackClient posts the text report to an incoming webhook.
type SlackClient struct {
	webhookURL string
	httpClient *http.Client
}

// NewSlackClient creates a Slack sink. An empty URL disables it.
func NewSlackClient(webhookURL string) *SlackClient {
	return &SlackClient{webhookURL: webhookURL, httpClient: http.DefaultClient}
}

// Send posts the message. Skipped with a warning when no webhook is
// configured; a network or HTTP error is returned to the caller.
func (s *SlackClient) Send(ctx context.Context, message string) error {
	if s.webhookURL == "" {
		log.Warn().Msg("slack webhook not set, skipping notification")
		return nil
	}

	payload, err := json.Marshal(map[string]string{"text": message})
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post slack message: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("post slack message: status %d", resp.StatusCode)
	}

	log.Info().Int("status", resp.StatusCode).Msg("slack message sent")
	return nil
}

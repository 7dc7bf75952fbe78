package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"taskdesk/internal/application/task/usecases"
)

const (
	requestTimeout = 10 * time.Second
	// Enough for an error payload; chat webhooks answer with short bodies.
	maxResponseSize = 16 << 10
)

// ChatWebhook posts task notifications to a chat incoming-webhook URL
// as a plain {"text": ...} payload. When an app URL is configured it is
// appended to every message so readers can jump straight to the board.
type ChatWebhook struct {
	httpClient *http.Client
	webhookURL string
	appURL     string
}

func NewChatWebhook(webhookURL, appURL string) *ChatWebhook {
	return &ChatWebhook{
		httpClient: &http.Client{Timeout: requestTimeout},
		webhookURL: webhookURL,
		appURL:     appURL,
	}
}

var _ usecases.Notifier = (*ChatWebhook)(nil)

func (n *ChatWebhook) Notify(ctx context.Context, text string) error {
	if n.appURL != "" {
		text = text + "\n" + n.appURL
	}

	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// Nop is the notifier used when no webhook URL is configured.
type Nop struct{}

func NewNop() Nop { return Nop{} }

var _ usecases.Notifier = Nop{}

func (Nop) Notify(ctx context.Context, text string) error { return nil }

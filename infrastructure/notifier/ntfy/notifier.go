// ABOUTME: ntfy-backed notifier pushes chapter updates to a configured topic
// ABOUTME: Falls back to a noop implementation when no topic is configured

package ntfy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mangawatch/core/interfaces"
)

const userAgent = "mangawatch/1.0"

// NewNotifier builds a notifier pushing to the given ntfy topic URL.
// An empty topic yields a noop notifier.
func NewNotifier(topic string, timeout time.Duration) interfaces.Notifier {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return noopNotifier{}
	}

	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &notifier{
		endpoint: topic,
		client:   &http.Client{Timeout: timeout},
	}
}

type notifier struct {
	endpoint string
	client   *http.Client
}

// Notify publishes one message to the topic. ntfy carries the title and
// icon in headers and the body as the message text.
func (n *notifier) Notify(ctx context.Context, title, body, icon string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if title != "" {
		req.Header.Set("X-Title", title)
	}
	if icon != "" {
		req.Header.Set("X-Icon", icon)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("ntfy returned %d", resp.StatusCode)
	}
	return nil
}

type noopNotifier struct{}

func (noopNotifier) Notify(ctx context.Context, title, body, icon string) error {
	return nil
}

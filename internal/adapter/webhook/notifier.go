package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mberkut/dishpatch/internal/domain/model"
)

// Notifier posts order events to a configured webhook endpoint. Delivery is
// best effort: failures are logged and never propagated to the caller.
type Notifier struct {
	endpoint   *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// payload mirrors the JSON body sent to the webhook.
type payload struct {
	Event   string `json:"event"`
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
	Total   *int64 `json:"total,omitempty"`
}

// NewNotifier creates a webhook notifier with default timeout.
func NewNotifier(endpoint string, logger *slog.Logger) (*Notifier, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse webhook url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("webhook url must be absolute")
	}
	return &Notifier{
		endpoint: parsed,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// OrderCreated reports a freshly created order.
func (n *Notifier) OrderCreated(ctx context.Context, order model.Order) {
	n.send(ctx, payload{
		Event:   "order.created",
		OrderID: order.ID,
		Status:  string(order.Status),
		Total:   order.Total,
	})
}

func (n *Notifier) send(ctx context.Context, p payload) {
	body, err := json.Marshal(p)
	if err != nil {
		n.logger.Error("webhook payload marshal failed", slog.String("error", err.Error()))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		n.logger.Error("webhook request build failed", slog.String("error", err.Error()))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.logger.Error("webhook delivery failed", slog.String("error", err.Error()))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		respBody, _ := io.ReadAll(resp.Body)
		n.logger.Error("webhook rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(respBody)))
	}
}

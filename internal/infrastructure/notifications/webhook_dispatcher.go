package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"stonetrade/internal/domain/quote"
	"stonetrade/internal/usecase/interfaces"
)

var (
	ErrMissingWebhookURL     = errors.New("missing NOTIFY_WEBHOOK_URL")
	ErrDispatcherUnavailable = errors.New("notification dispatcher not configured")
)

// WebhookDispatcher posts finalized quotes to the platform's notification
// fan-out endpoint. With NOTIFY_MOCK enabled it only logs, which keeps local
// runs free of external wiring.
type WebhookDispatcher struct {
	url      string
	client   *http.Client
	log      *zap.Logger
	mockMode bool
}

var _ interfaces.INotificationDispatch = (*WebhookDispatcher)(nil)

func NewWebhookDispatcher(url string, log *zap.Logger) (*WebhookDispatcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if isNotifyMockEnabled() {
		log.Info("notification dispatcher in mock mode")
		return &WebhookDispatcher{log: log, mockMode: true}, nil
	}
	if url == "" {
		return nil, ErrMissingWebhookURL
	}
	return &WebhookDispatcher{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}, nil
}

func (d *WebhookDispatcher) Send(ctx context.Context, q quote.SentQuote) error {
	if d != nil && d.mockMode {
		d.log.Info("mock quote notification",
			zap.String("quote_id", q.ID),
			zap.String("buyer_id", q.BuyerID),
			zap.String("buyer_facing_total", q.BuyerFacingTotal.String()))
		return nil
	}
	if d == nil || d.client == nil {
		return ErrDispatcherUnavailable
	}

	body, err := json.Marshal(q)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.log.Error("quote notification post failed", zap.String("quote_id", q.ID), zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		d.log.Error("quote notification rejected",
			zap.String("quote_id", q.ID), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
	}

	d.log.Info("quote notification delivered", zap.String("quote_id", q.ID))
	return nil
}

func isNotifyMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

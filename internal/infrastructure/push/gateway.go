package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/huddle-inc/huddle/internal/domain/notification"
	vo "github.com/huddle-inc/huddle/internal/domain/notification/valueobjects"
	"github.com/huddle-inc/huddle/internal/shared/config"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

// Maximum response body size for the push gateway (64KB)
const maxGatewayResponseSize = 64 << 10

// gatewayRequest is the JSON payload posted to the push gateway.
type gatewayRequest struct {
	RecipientID uint           `json:"recipient_id"`
	Title       string         `json:"title"`
	Body        string         `json:"body"`
	Type        string         `json:"type"`
	DeepLink    *string        `json:"deep_link,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
	BatchSize   int            `json:"batch_size,omitempty"`
}

type gatewayResponse struct {
	MessageID string `json:"message_id"`
}

// GatewayProvider delivers pushes through an external HTTP gateway that owns
// the device token registry. One recipient maps to any number of devices on
// the gateway side; this provider only speaks recipient IDs.
type GatewayProvider struct {
	url        string
	token      string
	httpClient *http.Client
	logger     logger.Interface
}

func NewGatewayProvider(cfg *config.PushConfig, logger logger.Interface) *GatewayProvider {
	return &GatewayProvider{
		url:   cfg.GatewayURL,
		token: cfg.GatewayToken,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
		logger: logger,
	}
}

var _ notification.PushProvider = (*GatewayProvider)(nil)

func (p *GatewayProvider) SendPush(ctx context.Context, recipientID uint, title, body string, notifType vo.NotificationType, deepLink *string, data map[string]any) (*notification.PushResult, error) {
	return p.post(ctx, gatewayRequest{
		RecipientID: recipientID,
		Title:       title,
		Body:        body,
		Type:        notifType.String(),
		DeepLink:    deepLink,
		Data:        data,
	})
}

func (p *GatewayProvider) SendBatchedPush(ctx context.Context, recipientID uint, batch []*notification.Notification) (*notification.PushResult, error) {
	if len(batch) == 0 {
		return nil, fmt.Errorf("empty batch")
	}

	title, body := SummarizeBatch(batch)
	first := batch[0]
	return p.post(ctx, gatewayRequest{
		RecipientID: recipientID,
		Title:       title,
		Body:        body,
		Type:        first.Type().String(),
		DeepLink:    first.DeepLink(),
		BatchSize:   len(batch),
	})
}

func (p *GatewayProvider) post(ctx context.Context, payload gatewayRequest) (*notification.PushResult, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("failed to create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach push gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return nil, fmt.Errorf("push gateway returned status %d", resp.StatusCode)
	}

	var data gatewayResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxGatewayResponseSize)).Decode(&data); err != nil {
		// The push went out; a malformed acknowledgment only costs us the
		// provider message ID. The reason lands on the delivery log row so
		// the missing ID can be traced.
		p.logger.Warnw("failed to decode push gateway response", "error", err)
		return &notification.PushResult{
			Success: true,
			Reason:  fmt.Sprintf("unreadable gateway ack: %v", err),
		}, nil
	}

	return &notification.PushResult{MessageID: data.MessageID, Success: true}, nil
}

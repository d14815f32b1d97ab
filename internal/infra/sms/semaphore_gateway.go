// Package sms sends alert text messages through an HTTP SMS gateway.
package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"safetrack/config"
	deliverycontext "safetrack/internal/delivery/context"
	"safetrack/internal/domain/service"
	"safetrack/internal/errors"

	"github.com/go-resty/resty/v2"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const messagesPath = "/messages"

// ErrNotConfigured is returned by the gateway used when no SMS provider is set up.
var ErrNotConfigured = errors.New("sms gateway not configured")

// semaphoreMessage is one element of the gateway's JSON array response.
type semaphoreMessage struct {
	MessageID json.Number `json:"message_id"`
	Recipient string      `json:"recipient"`
	Status    string      `json:"status"`
}

type semaphoreGateway struct {
	client     *resty.Client
	apiKey     string
	senderName string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGateway builds the configured SMS gateway. Without a base URL every send
// fails with ErrNotConfigured so attempts still land in the delivery log.
func NewGateway(params Params) service.SMSGateway {
	if strings.TrimSpace(params.Config.SMS.BaseURL) == "" {
		params.Logger.Warn("SMS gateway base URL not set, SMS delivery is disabled")

		return &unconfiguredGateway{}
	}

	return NewSemaphoreGateway(params.Config.SMS, params.Logger)
}

// NewSemaphoreGateway creates a client for a Semaphore-style SMS API.
// Each call is attempted once; there are no retries.
func NewSemaphoreGateway(cfg config.SMSConfig, logger *slog.Logger) service.SMSGateway {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &semaphoreGateway{
		client:     client,
		apiKey:     cfg.APIKey,
		senderName: cfg.SenderName,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
}

// Send posts one message. A non-2xx status, an unparseable body or a message
// the gateway marks as failed is returned as an error carrying the raw body.
// Transport failures, 429 and 5xx responses are marked retryable.
func (g *semaphoreGateway) Send(ctx context.Context, phone, message string) (*service.SMSSendResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, g.logger)

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "sms rate limiter")
	}

	form := map[string]string{
		"apikey":  g.apiKey,
		"number":  phone,
		"message": message,
	}
	if g.senderName != "" {
		form["sendername"] = g.senderName
	}

	start := time.Now()
	resp, err := g.client.R().
		SetContext(ctx).
		SetFormData(form).
		Post(messagesPath)
	if err != nil {
		return nil, errors.Wrap(errors.Retryable(err), "sms gateway request failed")
	}

	body := resp.String()
	logger.Debug("SMS gateway responded",
		slog.Int("status_code", resp.StatusCode()),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		err := fmt.Errorf("sms gateway returned HTTP %d: %s", resp.StatusCode(), body)
		if resp.StatusCode() == http.StatusTooManyRequests || resp.StatusCode() >= http.StatusInternalServerError {
			err = errors.Retryable(err)
		}

		return &service.SMSSendResult{ProviderResponse: body}, err
	}

	var messages []semaphoreMessage
	if err := json.Unmarshal(resp.Body(), &messages); err != nil || len(messages) == 0 {
		return &service.SMSSendResult{ProviderResponse: body},
			fmt.Errorf("sms gateway returned an unexpected body: %s", body)
	}

	first := messages[0]
	result := &service.SMSSendResult{
		MessageID:        first.MessageID.String(),
		Status:           first.Status,
		ProviderResponse: body,
	}

	if strings.EqualFold(first.Status, "failed") || strings.EqualFold(first.Status, "refunded") {
		return result, fmt.Errorf("sms gateway marked message %s as %s", result.MessageID, first.Status)
	}

	return result, nil
}

type unconfiguredGateway struct{}

func (unconfiguredGateway) Send(_ context.Context, _, _ string) (*service.SMSSendResult, error) {
	return nil, ErrNotConfigured
}

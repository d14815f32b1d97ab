package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"safetrack/config"
	deliverycontext "safetrack/internal/delivery/context"
	"safetrack/internal/domain/constants"
	"safetrack/internal/domain/repository"
	"safetrack/internal/domain/service"
	apperrors "safetrack/internal/errors"
	"safetrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenValidator checks a Google-signed ID token against an audience
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler receives alert dispatch events pushed by Pub/Sub
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validate       tokenValidator
	logger         *slog.Logger
	dispatchUC     usecase.DispatchUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	DispatchUC usecase.DispatchUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validate:       idtoken.Validate,
		logger:         params.Logger,
		dispatchUC:     params.DispatchUC,
	}
}

// HandlePush acknowledges with 200 unless the failure is worth a redelivery,
// in which case it answers 503 so Pub/Sub retries.
func (h *PushHandler) HandlePush(c echo.Context) error {
	req := c.Request()
	ctx := req.Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(req); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// A payload that never parses would be redelivered forever, so it is acked.
	var event service.AlertDispatchEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Dropping unparseable alert event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, h.logger, h.extractRequestID(ctx, &pushMsg, &event),
		slog.String("alert_id", event.AlertID),
		slog.String("child_id", event.ChildID),
	)

	reqLogger.Info("[Worker] Processing alert event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.Int("recipient_count", len(event.RecipientIDs)),
	)

	result, err := h.processAlert(ctx, &event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process alert event",
			slog.Any("error", err),
			slog.Bool("retryable", apperrors.IsRetryable(err)),
		)
		if apperrors.IsRetryable(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Alert event processed",
		slog.Int("sms_sent", result.Sent),
		slog.Int("sms_failed", result.Failed),
		slog.Int("skipped", result.Skipped),
		slog.Int("push_sent", result.PushSent),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event payload, then the inbound header
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.AlertDispatchEvent) string {
	if requestID := pushMsg.Message.Attributes[constants.AttrRequestID]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	return deliverycontext.GetRequestIDFromContext(ctx)
}

func (h *PushHandler) processAlert(ctx context.Context, event *service.AlertDispatchEvent) (*usecase.DispatchResult, error) {
	alertID, err := uuid.Parse(event.AlertID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid alert_id %q", event.AlertID)
	}

	result, err := h.dispatchUC.DeliverStored(ctx, alertID)
	switch {
	case err == nil:
		return result, nil
	case apperrors.IsAny(err, repository.ErrAlertNotFound, usecase.ErrDispatchIncomplete):
		// Redelivery cannot help a missing alert, and would re-send one already out.
		return nil, err
	default:
		return nil, apperrors.Retryable(err)
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

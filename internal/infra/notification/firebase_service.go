// Package notification delivers push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"safetrack/config"
	"safetrack/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

const alertChannelID = "safety_alerts"

// multicaster is the slice of the FCM client the service uses.
type multicaster interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicaster
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService creates the Firebase push service, or nil when Firebase is not configured.
// The dispatcher skips the push channel when it gets nil.
func NewPushService(params Params) (service.NotificationService, error) {
	if params.Config.Firebase == nil || params.Config.Firebase.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications disabled")

		return nil, nil
	}

	svc, err := NewFirebaseService(params.Ctx, params.Config.Firebase, params.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
		logger: logger,
	}, nil
}

// SendAlert multicasts one alert. Tokens FCM reports as unregistered or
// malformed come back in InvalidTokens.
func (s *firebaseService) SendAlert(ctx context.Context, tokens []string, alert *service.PushAlert) (*service.PushBatchResult, error) {
	if len(tokens) == 0 {
		return &service.PushBatchResult{}, nil
	}
	if len(tokens) > service.MaxPushBatch {
		return nil, fmt.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxPushBatch)
	}

	resp, err := s.client.SendEachForMulticast(ctx, buildMulticast(tokens, alert))
	if err != nil {
		return nil, fmt.Errorf("failed to send multicast notification: %w", err)
	}

	result := &service.PushBatchResult{
		Sent:   resp.SuccessCount,
		Failed: resp.FailureCount,
	}
	for idx, sendResp := range resp.Responses {
		if sendResp.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResp.Error) || messaging.IsUnregistered(sendResp.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])

			continue
		}
		s.logger.Warn("Push delivery failed", slog.Int("token_index", idx), slog.Any("error", sendResp.Error))
	}

	return result, nil
}

func buildMulticast(tokens []string, alert *service.PushAlert) *messaging.MulticastMessage {
	androidPriority, apnsPriority := "normal", "5"
	if alert.Urgent {
		androidPriority, apnsPriority = "high", "10"
	}

	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: alert.Title,
			Body:  alert.Body,
		},
		Data: alert.Data,
		Android: &messaging.AndroidConfig{
			Priority: androidPriority,
			Notification: &messaging.AndroidNotification{
				ChannelID: alertChannelID,
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{"apns-priority": apnsPriority},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}
}

package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"safetrack/config"
	deliverycontext "safetrack/internal/delivery/context"
	"safetrack/internal/domain/entity"
	"safetrack/internal/domain/phone"
	"safetrack/internal/domain/repository"
	"safetrack/internal/domain/service"
	apperrors "safetrack/internal/errors"
	"safetrack/internal/infra/metrics"
	"safetrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultDispatchConcurrency = 8
	defaultSMSTimeout          = 10 * time.Second
)

// ErrNilAlertEvent is returned when dispatch is asked to deliver nothing.
var ErrNilAlertEvent = errors.New("alert event is required")

type dispatchService struct {
	alertRepo       repository.AlertRepository
	recipientRepo   repository.RecipientRepository
	deliveryLogRepo repository.DeliveryLogRepository
	deviceRepo      repository.DeviceRepository
	smsGateway      service.SMSGateway
	pushSvc         service.NotificationService
	metrics         *metrics.Metrics
	concurrency     int
	callTimeout     time.Duration
	logger          *slog.Logger
	now             func() time.Time
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	AlertRepo       repository.AlertRepository
	RecipientRepo   repository.RecipientRepository
	DeliveryLogRepo repository.DeliveryLogRepository
	DeviceRepo      repository.DeviceRepository
	SMSGateway      service.SMSGateway
	PushService     service.NotificationService `optional:"true"`
	Metrics         *metrics.Metrics             `optional:"true"`
	Config          *config.Config
	Logger          *slog.Logger
}

// NewDispatchService creates the notification dispatcher
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	concurrency := params.Config.Alerting.DispatchConcurrency
	if concurrency <= 0 {
		concurrency = defaultDispatchConcurrency
	}

	callTimeout := params.Config.SMS.Timeout
	if callTimeout <= 0 {
		callTimeout = defaultSMSTimeout
	}

	return &dispatchService{
		alertRepo:       params.AlertRepo,
		recipientRepo:   params.RecipientRepo,
		deliveryLogRepo: params.DeliveryLogRepo,
		deviceRepo:      params.DeviceRepo,
		smsGateway:      params.SMSGateway,
		pushSvc:         params.PushService,
		metrics:         params.Metrics,
		concurrency:     concurrency,
		callTimeout:     callTimeout,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dispatch fans the alert out over SMS and push. The caller's cancellation does
// not stop the fan-out; every gateway call is bounded by its own timeout instead.
func (srv *dispatchService) Dispatch(ctx context.Context, event *entity.AlertEvent, recipients []*entity.Recipient) (*usecase.DispatchResult, error) {
	if event == nil {
		return nil, ErrNilAlertEvent
	}

	ctx = context.WithoutCancel(ctx)
	result := &usecase.DispatchResult{}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(srv.concurrency)

	for _, recipient := range recipients {
		if !recipient.HasPhone() {
			result.Skipped++

			continue
		}

		result.Attempted++
		g.Go(func() error {
			ok := srv.sendSMS(ctx, event, recipient)

			mu.Lock()
			defer mu.Unlock()
			if ok {
				result.Sent++
			} else {
				result.Failed++
			}

			return nil
		})
	}

	// Push runs alongside the SMS workers.
	if srv.pushSvc != nil && len(recipients) > 0 {
		g.Go(func() error {
			sent, failed := srv.sendPush(ctx, event, recipients)

			mu.Lock()
			defer mu.Unlock()
			result.PushSent = sent
			result.PushFailed = failed

			return nil
		})
	}

	_ = g.Wait()

	srv.log(ctx).Info("Alert dispatched",
		slog.String("alert_id", event.ID.String()),
		slog.Int("attempted", result.Attempted),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("skipped", result.Skipped),
		slog.Int("push_sent", result.PushSent),
		slog.Int("push_failed", result.PushFailed),
	)

	return result, nil
}

// Deliver dispatches and records the outcome on the alert. The alert moves to
// sent whatever the individual channels reported.
func (srv *dispatchService) Deliver(ctx context.Context, event *entity.AlertEvent, recipients []*entity.Recipient) (*usecase.DispatchResult, error) {
	result, err := srv.Dispatch(ctx, event, recipients)
	if err != nil {
		return nil, err
	}

	outcome := entity.AlertOutcome{
		SMSDelivered:  result.Sent > 0,
		PushDelivered: result.PushSent > 0,
		TotalSent:     result.Sent + result.PushSent,
		TotalFailed:   result.Failed + result.PushFailed,
		SentAt:        srv.now(),
	}

	if err := srv.alertRepo.MarkSent(context.WithoutCancel(ctx), event.ID, outcome); err != nil {
		return result, fmt.Errorf("%w: %w", usecase.ErrDispatchIncomplete, err)
	}

	return result, nil
}

// DeliverStored is the worker entry point for alerts claimed in async mode.
func (srv *dispatchService) DeliverStored(ctx context.Context, alertID uuid.UUID) (*usecase.DispatchResult, error) {
	event, err := srv.alertRepo.FindByID(ctx, alertID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load alert")
	}

	if event.Status == entity.AlertStatusSent {
		srv.log(ctx).Info("Alert already sent, skipping", slog.String("alert_id", alertID.String()))

		return &usecase.DispatchResult{}, nil
	}

	recipients, err := srv.recipientRepo.FindByIDs(ctx, event.RecipientIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load alert recipients")
	}

	return srv.Deliver(ctx, event, recipients)
}

// sendSMS writes a pending log entry, calls the gateway and records the outcome.
// It reports whether the gateway accepted the message.
func (srv *dispatchService) sendSMS(ctx context.Context, event *entity.AlertEvent, recipient *entity.Recipient) bool {
	logger := srv.log(ctx).With(
		slog.String("alert_id", event.ID.String()),
		slog.String("recipient_id", recipient.ID.String()),
	)

	now := srv.now()
	entry := &entity.DeliveryLogEntry{
		ID:           uuid.New(),
		AlertEventID: event.ID,
		RecipientID:  recipient.ID,
		Channel:      entity.DeliveryChannelSMS,
		Message:      event.Message,
		Status:       entity.DeliveryStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	normalized, err := phone.Normalize(recipient.Phone)
	if err != nil {
		entry.Destination = recipient.Phone
		entry.Status = entity.DeliveryStatusFailed
		entry.ProviderResponse = err.Error()
		if insertErr := srv.deliveryLogRepo.Insert(ctx, entry); insertErr != nil {
			logger.Error("Failed to write delivery log", slog.Any("error", insertErr))
		}
		logger.Warn("Skipping SMS to unparseable phone number", slog.Any("error", err))
		srv.metrics.ObserveDelivery(string(entity.DeliveryChannelSMS), string(entity.DeliveryStatusFailed), 0)

		return false
	}
	entry.Destination = normalized

	logged := true
	if err := srv.deliveryLogRepo.Insert(ctx, entry); err != nil {
		logged = false
		logger.Error("Failed to write pending delivery log", slog.Any("error", err))
	}

	callCtx, cancel := context.WithTimeout(ctx, srv.callTimeout)
	start := time.Now()
	res, sendErr := srv.smsGateway.Send(callCtx, normalized, event.Message)
	elapsed := time.Since(start)
	cancel()

	status := entity.DeliveryStatusSent
	var response string
	if sendErr != nil {
		status = entity.DeliveryStatusFailed
		response = sendErr.Error()
		logger.Warn("SMS delivery failed",
			slog.Bool("transient", apperrors.IsRetryable(sendErr)),
			slog.Any("error", sendErr),
		)
	} else if res != nil {
		response = res.ProviderResponse
	}

	srv.metrics.ObserveDelivery(string(entity.DeliveryChannelSMS), string(status), elapsed)

	if logged {
		if err := srv.deliveryLogRepo.UpdateOutcome(ctx, entry.ID, status, response); err != nil {
			logger.Error("Failed to update delivery log", slog.Any("error", err))
		}
	}

	return sendErr == nil
}

// sendPush multicasts the alert to every active device of the recipients.
// Tokens reported invalid deactivate their device.
func (srv *dispatchService) sendPush(ctx context.Context, event *entity.AlertEvent, recipients []*entity.Recipient) (sent, failed int) {
	logger := srv.log(ctx).With(slog.String("alert_id", event.ID.String()))

	devices, err := srv.deviceRepo.FindActiveByRecipients(ctx, recipientIDs(recipients))
	if err != nil {
		logger.Error("Failed to load recipient devices", slog.Any("error", err))

		return 0, 0
	}
	if len(devices) == 0 {
		return 0, 0
	}

	tokens := make([]string, 0, len(devices))
	deviceMap := make(map[string]*entity.RecipientDevice, len(devices))
	for _, device := range devices {
		if _, dup := deviceMap[device.FCMToken]; dup {
			continue
		}
		tokens = append(tokens, device.FCMToken)
		deviceMap[device.FCMToken] = device
	}

	alert := &service.PushAlert{
		Title: pushTitle(event.Kind),
		Body:  event.Message,
		Data: map[string]string{
			"alert_id": event.ID.String(),
			"child_id": event.ChildID.String(),
			"kind":     string(event.Kind),
			"severity": string(event.Severity),
		},
		Urgent: event.Severity != entity.AlertSeverityInfo,
	}

	var (
		entries       []*entity.DeliveryLogEntry
		invalidTokens []string
	)

	for batch := range slices.Chunk(tokens, service.MaxPushBatch) {
		start := time.Now()
		res, err := srv.pushSvc.SendAlert(ctx, batch, alert)
		elapsed := time.Since(start)

		invalid := make(map[string]struct{})
		if err != nil {
			logger.Warn("Push batch failed", slog.Int("batch_size", len(batch)), slog.Any("error", err))
			failed += len(batch)
		} else {
			sent += res.Sent
			failed += res.Failed
			for _, token := range res.InvalidTokens {
				invalid[token] = struct{}{}
			}
			invalidTokens = append(invalidTokens, res.InvalidTokens...)
		}

		now := srv.now()
		for _, token := range batch {
			status := entity.DeliveryStatusSent
			response := ""

			switch {
			case err != nil:
				status = entity.DeliveryStatusFailed
				response = err.Error()
			case hasToken(invalid, token):
				status = entity.DeliveryStatusFailed
				response = "invalid or unregistered token"
			}
			srv.metrics.ObserveDelivery(string(entity.DeliveryChannelPush), string(status), elapsed)

			device := deviceMap[token]
			entries = append(entries, &entity.DeliveryLogEntry{
				ID:               uuid.New(),
				AlertEventID:     event.ID,
				RecipientID:      device.RecipientID,
				Channel:          entity.DeliveryChannelPush,
				Destination:      device.DeviceID,
				Message:          event.Message,
				Status:           status,
				ProviderResponse: response,
				CreatedAt:        now,
				UpdatedAt:        now,
			})
		}
	}

	if err := srv.deliveryLogRepo.BatchInsert(ctx, entries); err != nil {
		logger.Error("Failed to write push delivery logs", slog.Any("error", err))
	}

	if len(invalidTokens) > 0 {
		retired, err := srv.deviceRepo.DeactivateTokens(ctx, invalidTokens)
		if err != nil {
			logger.Warn("Failed to deactivate invalid devices", slog.Any("error", err))
		} else {
			logger.Info("Retired rejected push tokens", slog.Int64("devices", retired))
		}
	}

	return sent, failed
}

func hasToken(set map[string]struct{}, token string) bool {
	_, ok := set[token]

	return ok
}

func pushTitle(kind entity.AlertKind) string {
	switch kind {
	case entity.AlertKindBoundaryExit:
		return "Safe zone alert"
	case entity.AlertKindMissingChild:
		return "Missing child alert"
	case entity.AlertKindCaseResolved:
		return "Case resolved"
	default:
		return "School safety notice"
	}
}

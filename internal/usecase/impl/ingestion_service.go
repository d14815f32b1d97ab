package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"safetrack/config"
	deliverycontext "safetrack/internal/delivery/context"
	"safetrack/internal/domain/entity"
	domainerrors "safetrack/internal/domain/errors"
	"safetrack/internal/domain/geo"
	"safetrack/internal/domain/policy"
	"safetrack/internal/domain/repository"
	"safetrack/internal/domain/service"
	"safetrack/internal/infra/metrics"
	"safetrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500

	// maxReportSkew is how far a device clock may run ahead of ours.
	maxReportSkew = 2 * time.Minute
)

// ingestionService implements the IngestionUsecase interface.
type ingestionService struct {
	txManager     repository.TransactionManager
	childRepo     repository.ChildRepository
	safeZoneRepo  repository.SafeZoneRepository
	locationRepo  repository.LocationRepository
	alertRepo     repository.AlertRepository
	recipients    usecase.RecipientUsecase
	dispatcher    usecase.DispatchUsecase
	publisher     service.EventPublisher
	metrics       *metrics.Metrics
	window        *policy.AlertingWindow
	cooldown      time.Duration
	asyncDispatch bool
	historyLimit  int
	logger        *slog.Logger
	now           func() time.Time
}

// IngestionServiceParams holds dependencies for IngestionService, injected by Fx.
type IngestionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ChildRepo    repository.ChildRepository
	SafeZoneRepo repository.SafeZoneRepository
	LocationRepo repository.LocationRepository
	AlertRepo    repository.AlertRepository
	Recipients   usecase.RecipientUsecase
	Dispatcher   usecase.DispatchUsecase
	Publisher    service.EventPublisher `optional:"true"`
	Metrics      *metrics.Metrics       `optional:"true"`
	Window       *policy.AlertingWindow
	Config       *config.Config
	Logger       *slog.Logger
}

// NewIngestionService creates the location ingestion pipeline
func NewIngestionService(params IngestionServiceParams) usecase.IngestionUsecase {
	cooldown := params.Config.Alerting.Cooldown
	if cooldown <= 0 {
		cooldown = policy.DefaultBoundaryExitCooldown
	}

	historyLimit := params.Config.Alerting.HistoryLimit
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}

	return &ingestionService{
		txManager:     params.TxManager,
		childRepo:     params.ChildRepo,
		safeZoneRepo:  params.SafeZoneRepo,
		locationRepo:  params.LocationRepo,
		alertRepo:     params.AlertRepo,
		recipients:    params.Recipients,
		dispatcher:    params.Dispatcher,
		publisher:     params.Publisher,
		metrics:       params.Metrics,
		window:        params.Window,
		cooldown:      cooldown,
		asyncDispatch: params.Config.Alerting.DispatchMode == config.DispatchModeAsync,
		historyLimit:  historyLimit,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *ingestionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Ingest runs one position report through the pipeline. Only validation, an
// unknown subject, a safe zone lookup failure and a failed location write fail
// the call. Everything after the location is stored is best-effort.
func (srv *ingestionService) Ingest(ctx context.Context, input *usecase.IngestLocationInput) (*usecase.IngestResult, error) {
	start := time.Now()
	outcome := metrics.OutcomeStoreFailed
	defer func() { srv.metrics.ObserveIngest(outcome, time.Since(start)) }()

	if err := validateIngestInput(input); err != nil {
		outcome = metrics.OutcomeRejected

		return nil, err
	}

	subjectID := strings.TrimSpace(input.SubjectID)
	logger := srv.log(ctx).With(slog.String("subject_id", subjectID))

	child, err := srv.childRepo.FindActiveBySubjectID(ctx, subjectID)
	if errors.Is(err, repository.ErrChildNotFound) {
		outcome = metrics.OutcomeUnknownChild

		return nil, domainerrors.ErrChildNotFound
	}
	if err != nil {
		logger.Error("Failed to look up child", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up child")
	}

	zone, err := srv.safeZoneRepo.GetActiveZone(ctx)
	switch {
	case errors.Is(err, entity.ErrInvalidSafeZone):
		logger.Warn("Active safe zone is invalid, treating position as inside", slog.Any("error", err))
		zone = nil
	case err != nil:
		logger.Error("Failed to load safe zone", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrSafeZoneUnavailable, err.Error())
	case zone == nil:
		logger.Warn("No active safe zone, treating position as inside")
	}

	receivedAt := srv.now()
	recordedAt := reportedTime(logger, input.ReportedAt, receivedAt)

	point := geo.NewCoordinate(*input.Latitude, *input.Longitude)
	inside := geo.Classify(point, zone)

	record := &entity.LocationRecord{
		ChildID:        child.ID,
		Latitude:       point.Lat(),
		Longitude:      point.Lng(),
		Accuracy:       input.Accuracy,
		InsideSafeZone: inside,
		RecordedAt:     recordedAt,
		ReceivedAt:     receivedAt,
	}
	if err := srv.locationRepo.Append(ctx, record); err != nil {
		logger.Error("Failed to store location", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrLocationPersistFailed, err.Error())
	}

	result := &usecase.IngestResult{InsideSafeZone: inside}

	if inside {
		outcome = metrics.OutcomeInside

		return result, nil
	}

	if !srv.window.Contains(recordedAt) {
		outcome = metrics.OutcomeOffHours
		logger.Debug("Outside safe zone outside the alerting window", slog.Time("recorded_at", recordedAt))

		return result, nil
	}

	outcome = srv.raiseBoundaryExit(ctx, logger, child, record, result)

	return result, nil
}

// reportedTime picks the fix time: the device's reported_at when present,
// clamped to receivedAt when it runs more than maxReportSkew ahead.
func reportedTime(logger *slog.Logger, reportedAt *time.Time, receivedAt time.Time) time.Time {
	if reportedAt == nil || reportedAt.IsZero() {
		return receivedAt
	}
	if reportedAt.After(receivedAt.Add(maxReportSkew)) {
		logger.Warn("Reported time is ahead of the server clock, using receive time",
			slog.Time("reported_at", *reportedAt), slog.Time("received_at", receivedAt))

		return receivedAt
	}

	return *reportedAt
}

// raiseBoundaryExit claims and dispatches a boundary-exit alert, filling result.
// It returns the metrics outcome for the call.
func (srv *ingestionService) raiseBoundaryExit(
	ctx context.Context,
	logger *slog.Logger,
	child *entity.Child,
	record *entity.LocationRecord,
	result *usecase.IngestResult,
) string {
	kind := entity.AlertKindBoundaryExit
	now := srv.now()

	allowed, err := policy.Allow(ctx, srv.alertRepo, child.ID, kind, now, srv.cooldown)
	if err != nil {
		logger.Error("Failed to read alert history", slog.Any("error", err))

		return metrics.OutcomeAlertFailed
	}
	if !allowed {
		result.AlertSkipped = true

		return metrics.OutcomeThrottled
	}

	recipients, err := srv.recipients.Resolve(ctx, child.ID)
	if err != nil {
		logger.Error("Failed to resolve alert recipients", slog.Any("error", err))

		return metrics.OutcomeAlertFailed
	}

	event, err := srv.claimAlert(ctx, child, kind, srv.boundaryExitMessage(child, record), recipients, now)
	if err != nil {
		logger.Error("Failed to claim alert", slog.Any("error", err))

		return metrics.OutcomeAlertFailed
	}
	if event == nil {
		result.AlertSkipped = true

		return metrics.OutcomeThrottled
	}

	srv.metrics.IncAlert(string(kind))
	result.RecipientsCount = len(recipients)
	logger = logger.With(slog.String("alert_id", event.ID.String()))

	if srv.asyncDispatch && srv.publisher != nil {
		err := srv.publisher.PublishAlertDispatchEvent(ctx, &service.AlertDispatchEvent{
			RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
			AlertID:      event.ID.String(),
			ChildID:      child.ID.String(),
			RecipientIDs: uuidStrings(event.RecipientIDs),
		})
		if err == nil {
			result.AlertSent = true
			result.DispatchQueued = true

			return metrics.OutcomeQueued
		}
		logger.Warn("Failed to queue alert, dispatching inline", slog.Any("error", err))
	}

	dispatched, err := srv.dispatcher.Deliver(ctx, event, recipients)
	if dispatched != nil {
		result.AlertSent = true
		result.SMSSentCount = dispatched.Sent
	}
	if err != nil {
		logger.Error("Alert dispatch did not complete", slog.Any("error", err))
	}

	return metrics.OutcomeAlerted
}

// claimAlert inserts a pending alert while holding the per-subject lock, unless
// another request already alerted within the cooldown. It returns nil when the
// claim is lost.
func (srv *ingestionService) claimAlert(
	ctx context.Context,
	child *entity.Child,
	kind entity.AlertKind,
	message string,
	recipients []*entity.Recipient,
	now time.Time,
) (*entity.AlertEvent, error) {
	var claimed *entity.AlertEvent

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		alertRepo := repoFactory.NewAlertRepository()

		if err := alertRepo.LockSubject(ctx, child.ID, kind); err != nil {
			return errors.Wrap(err, "failed to lock alert subject")
		}

		last, err := alertRepo.MostRecent(ctx, child.ID, kind)
		if err != nil {
			return errors.Wrap(err, "failed to re-check alert history")
		}
		if !policy.AllowAfter(last, now, srv.cooldown) {
			return nil
		}

		event := &entity.AlertEvent{
			ID:           uuid.New(),
			ChildID:      child.ID,
			Kind:         kind,
			Severity:     entity.SeverityFor(kind),
			Message:      message,
			RecipientIDs: recipientIDs(recipients),
			Status:       entity.AlertStatusPending,
			CreatedAt:    now,
		}
		if err := alertRepo.Insert(ctx, event); err != nil {
			return errors.Wrap(err, "failed to insert alert")
		}
		claimed = event

		return nil
	})
	if err != nil {
		return nil, err
	}

	return claimed, nil
}

func (srv *ingestionService) boundaryExitMessage(child *entity.Child, record *entity.LocationRecord) string {
	at := record.RecordedAt
	if srv.window != nil && srv.window.Location != nil {
		at = at.In(srv.window.Location)
	}

	return fmt.Sprintf("SAFETY ALERT: %s has left the school safe zone at %s. Last known position: %.6f, %.6f.",
		child.FullName, at.Format("3:04 PM"), record.Latitude, record.Longitude)
}

// LocationHistory returns stored positions for a child.
func (srv *ingestionService) LocationHistory(ctx context.Context, query *usecase.LocationHistoryQuery) ([]*entity.LocationRecord, error) {
	if query == nil || strings.TrimSpace(query.SubjectID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("subject_id is required")
	}

	child, err := srv.childRepo.FindActiveBySubjectID(ctx, strings.TrimSpace(query.SubjectID))
	if errors.Is(err, repository.ErrChildNotFound) {
		return nil, domainerrors.ErrChildNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up child")
	}

	switch {
	case query.From != nil && query.To != nil:
		if query.To.Before(*query.From) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("to must not be before from")
		}

		records, err := srv.locationRepo.FindBetween(ctx, child.ID, *query.From, *query.To)
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load location range")
		}

		return records, nil
	case query.From != nil || query.To != nil:
		return nil, domainerrors.ErrValidationFailed.WithDetails("from and to must be given together")
	}

	limit := query.Limit
	if limit <= 0 {
		limit = srv.historyLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := srv.locationRepo.MostRecent(ctx, child.ID, limit)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load recent locations")
	}

	return records, nil
}

func validateIngestInput(input *usecase.IngestLocationInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrValidationFailed.WithDetails("request body is required")
	case strings.TrimSpace(input.SubjectID) == "":
		return domainerrors.ErrValidationFailed.WithDetails("subject_id is required")
	case input.Latitude == nil:
		return domainerrors.ErrValidationFailed.WithDetails("latitude is required")
	case input.Longitude == nil:
		return domainerrors.ErrValidationFailed.WithDetails("longitude is required")
	}

	if err := geo.ValidateCoordinate(*input.Latitude, *input.Longitude); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if input.Accuracy != nil && *input.Accuracy < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("accuracy must not be negative")
	}

	return nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}

package postgres

import (
	"context"

	"safetrack/internal/domain/entity"
	domainerrors "safetrack/internal/domain/errors"
	"safetrack/internal/domain/repository"
	"safetrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// MostRecent returns the newest alert of a kind for a child, or nil.
func (repo *alertRepository) MostRecent(ctx context.Context, childID uuid.UUID, kind entity.AlertKind) (*entity.AlertEvent, error) {
	var alertM model.AlertEventModel

	if err := repo.db.WithContext(ctx).
		Where("child_id = ? AND kind = ?", childID, string(kind)).
		Order("created_at DESC").
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find most recent alert")
	}

	return toAlertDomain(&alertM), nil
}

// Insert persists a new alert with its recipient set.
func (repo *alertRepository) Insert(ctx context.Context, event *entity.AlertEvent) error {
	alertM := fromAlertDomain(event)

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrIntegrityViolation.Wrap("invalid child or recipient reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrIntegrityViolation.Wrap("missing required alert information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert event")
	}

	event.ID = alertM.ID
	event.CreatedAt = alertM.CreatedAt

	return nil
}

// MarkSent moves a pending alert to sent. Marking an already sent alert is a no-op.
func (repo *alertRepository) MarkSent(ctx context.Context, id uuid.UUID, outcome entity.AlertOutcome) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertEventModel{}).
		Where("id = ? AND status = ?", id, string(entity.AlertStatusPending)).
		Updates(map[string]any{
			"status":         string(entity.AlertStatusSent),
			"sms_delivered":  outcome.SMSDelivered,
			"push_delivered": outcome.PushDelivered,
			"total_sent":     outcome.TotalSent,
			"total_failed":   outcome.TotalFailed,
			"sent_at":        outcome.SentAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark alert sent")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.AlertEventModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check alert existence")
	}

	if count == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

// FindByID loads an alert with its recipient set.
func (repo *alertRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AlertEvent, error) {
	var alertM model.AlertEventModel

	if err := repo.db.WithContext(ctx).
		Preload("Recipients").
		Where("id = ?", id).
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert by ID")
	}

	return toAlertDomain(&alertM), nil
}

// LockSubject takes a transaction-scoped advisory lock keyed by child and kind.
func (repo *alertRepository) LockSubject(ctx context.Context, childID uuid.UUID, kind entity.AlertKind) error {
	key := childID.String() + ":" + string(kind)

	if err := repo.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
		return errors.Wrap(err, "failed to acquire alert lock")
	}

	return nil
}

// --- Mapper Functions ---

func toAlertDomain(data *model.AlertEventModel) *entity.AlertEvent {
	if data == nil {
		return nil
	}

	recipientIDs := make([]uuid.UUID, 0, len(data.Recipients))
	for _, r := range data.Recipients {
		recipientIDs = append(recipientIDs, r.RecipientID)
	}

	return &entity.AlertEvent{
		ID:            data.ID,
		ChildID:       data.ChildID,
		CaseID:        data.CaseID,
		Kind:          entity.AlertKind(data.Kind),
		Severity:      entity.AlertSeverity(data.Severity),
		Message:       data.Message,
		RecipientIDs:  recipientIDs,
		Status:        entity.AlertStatus(data.Status),
		SMSDelivered:  data.SMSDelivered,
		PushDelivered: data.PushDelivered,
		TotalSent:     data.TotalSent,
		TotalFailed:   data.TotalFailed,
		CreatedAt:     data.CreatedAt,
		SentAt:        data.SentAt,
	}
}

func fromAlertDomain(data *entity.AlertEvent) *model.AlertEventModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.AlertStatusPending
	}

	recipients := make([]model.AlertEventRecipientModel, 0, len(data.RecipientIDs))
	seen := make(map[uuid.UUID]struct{}, len(data.RecipientIDs))
	for _, id := range data.RecipientIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		recipients = append(recipients, model.AlertEventRecipientModel{
			AlertEventID: data.ID,
			RecipientID:  id,
		})
	}

	return &model.AlertEventModel{
		ID:            data.ID,
		ChildID:       data.ChildID,
		CaseID:        data.CaseID,
		Kind:          string(data.Kind),
		Severity:      string(data.Severity),
		Message:       data.Message,
		Status:        string(status),
		SMSDelivered:  data.SMSDelivered,
		PushDelivered: data.PushDelivered,
		TotalSent:     data.TotalSent,
		TotalFailed:   data.TotalFailed,
		CreatedAt:     data.CreatedAt,
		SentAt:        data.SentAt,
		Recipients:    recipients,
	}
}

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

// deliveryLogRepository implements the repository.DeliveryLogRepository interface.
type deliveryLogRepository struct {
	db *gorm.DB
}

// NewDeliveryLogRepository is the constructor for deliveryLogRepository.
func NewDeliveryLogRepository(db *gorm.DB) repository.DeliveryLogRepository {
	return &deliveryLogRepository{
		db: db,
	}
}

// Insert persists a single delivery log entry.
func (repo *deliveryLogRepository) Insert(ctx context.Context, entry *entity.DeliveryLogEntry) error {
	entryM := fromDeliveryLogDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrIntegrityViolation.Wrap("invalid alert or recipient reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery log")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// UpdateOutcome records the final status of an entry.
func (repo *deliveryLogRepository) UpdateOutcome(ctx context.Context, id uuid.UUID, status entity.DeliveryStatus, providerResponse string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryLogModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":            string(status),
			"provider_response": providerResponse,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update delivery log")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeliveryLogNotFound
	}

	return nil
}

// BatchInsert persists multiple entries in batches.
func (repo *deliveryLogRepository) BatchInsert(ctx context.Context, entries []*entity.DeliveryLogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	entryModels := make([]*model.DeliveryLogModel, 0, len(entries))
	for _, entry := range entries {
		entryModels = append(entryModels, fromDeliveryLogDomain(entry))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(entryModels, 100).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrIntegrityViolation.Wrap("invalid alert or recipient reference in batch")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create delivery logs")
	}

	for i, entryM := range entryModels {
		entries[i].ID = entryM.ID
		entries[i].CreatedAt = entryM.CreatedAt
		entries[i].UpdatedAt = entryM.UpdatedAt
	}

	return nil
}

// FindByAlert returns every entry written for an alert, oldest first.
func (repo *deliveryLogRepository) FindByAlert(ctx context.Context, alertID uuid.UUID) ([]*entity.DeliveryLogEntry, error) {
	var entryModels []*model.DeliveryLogModel

	if err := repo.db.WithContext(ctx).
		Where("alert_event_id = ?", alertID).
		Order("created_at ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find delivery logs")
	}

	entries := make([]*entity.DeliveryLogEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toDeliveryLogDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

func toDeliveryLogDomain(data *model.DeliveryLogModel) *entity.DeliveryLogEntry {
	if data == nil {
		return nil
	}

	return &entity.DeliveryLogEntry{
		ID:               data.ID,
		AlertEventID:     data.AlertEventID,
		RecipientID:      data.RecipientID,
		Channel:          entity.DeliveryChannel(data.Channel),
		Destination:      data.Destination,
		Message:          data.Message,
		Status:           entity.DeliveryStatus(data.Status),
		ProviderResponse: data.ProviderResponse,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromDeliveryLogDomain(data *entity.DeliveryLogEntry) *model.DeliveryLogModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryLogModel{
		ID:               data.ID,
		AlertEventID:     data.AlertEventID,
		RecipientID:      data.RecipientID,
		Channel:          string(data.Channel),
		Destination:      data.Destination,
		Message:          data.Message,
		Status:           string(data.Status),
		ProviderResponse: data.ProviderResponse,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

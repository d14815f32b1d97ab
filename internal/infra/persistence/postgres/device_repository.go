package postgres

import (
	"context"

	"safetrack/internal/domain/entity"
	"safetrack/internal/domain/repository"
	"safetrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository reads and retires guardian push devices.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// FindActiveByRecipients retrieves all active devices owned by the given recipients.
func (repo *deviceRepository) FindActiveByRecipients(ctx context.Context, recipientIDs []uuid.UUID) ([]*entity.RecipientDevice, error) {
	if len(recipientIDs) == 0 {
		return []*entity.RecipientDevice{}, nil
	}

	var rows []*model.RecipientDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("recipient_id IN ? AND is_active = ?", recipientIDs, true).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by recipients")
	}

	devices := make([]*entity.RecipientDevice, 0, len(rows))
	for _, row := range rows {
		devices = append(devices, toDeviceDomain(row))
	}

	return devices, nil
}

// DeactivateTokens marks devices inactive so later pushes skip them. A token
// registered by two guardians retires both devices.
func (repo *deviceRepository) DeactivateTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RecipientDeviceModel{}).
		Where("fcm_token IN ? AND is_active = ?", tokens, true).
		Update("is_active", false)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate devices")
	}

	return result.RowsAffected, nil
}

func toDeviceDomain(data *model.RecipientDeviceModel) *entity.RecipientDevice {
	if data == nil {
		return nil
	}

	return &entity.RecipientDevice{
		ID:          data.ID,
		RecipientID: data.RecipientID,
		FCMToken:    data.FCMToken,
		DeviceID:    data.DeviceID,
		Platform:    data.Platform,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

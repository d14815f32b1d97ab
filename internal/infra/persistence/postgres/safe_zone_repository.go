package postgres

import (
	"context"

	"safetrack/internal/domain/entity"
	"safetrack/internal/domain/repository"
	"safetrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// safeZoneRepository implements the repository.SafeZoneRepository interface.
type safeZoneRepository struct {
	db *gorm.DB
}

// NewSafeZoneRepository is the constructor for safeZoneRepository.
func NewSafeZoneRepository(db *gorm.DB) repository.SafeZoneRepository {
	return &safeZoneRepository{
		db: db,
	}
}

// GetActiveZone returns the active safe zone. If more than one row is flagged
// active the most recently updated one wins. A row with unusable geometry is
// reported as entity.ErrInvalidSafeZone.
func (repo *safeZoneRepository) GetActiveZone(ctx context.Context) (*entity.SafeZone, error) {
	var zoneM model.SafeZoneModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("updated_at DESC").
		First(&zoneM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load active safe zone")
	}

	zone := toSafeZoneDomain(&zoneM)
	if err := zone.Validate(); err != nil {
		return nil, errors.Wrapf(err, "safe zone %s", zone.ID)
	}

	return zone, nil
}

func toSafeZoneDomain(data *model.SafeZoneModel) *entity.SafeZone {
	if data == nil {
		return nil
	}

	return &entity.SafeZone{
		ID:           data.ID,
		Name:         data.Name,
		CenterLat:    data.CenterLat,
		CenterLng:    data.CenterLng,
		RadiusMeters: data.RadiusMeters,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

package postgres

import (
	"context"
	"time"

	"safetrack/internal/domain/entity"
	domainerrors "safetrack/internal/domain/errors"
	"safetrack/internal/domain/repository"
	"safetrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// Append inserts a location record. Records are never updated afterwards.
func (repo *locationRepository) Append(ctx context.Context, record *entity.LocationRecord) error {
	recordM := fromLocationDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append location record")
	}

	record.ID = recordM.ID

	return nil
}

// MostRecent returns up to limit records for a child, newest first.
func (repo *locationRepository) MostRecent(ctx context.Context, childID uuid.UUID, limit int) ([]*entity.LocationRecord, error) {
	var recordModels []*model.LocationRecordModel

	query := repo.db.WithContext(ctx).
		Where("child_id = ?", childID).
		Order("recorded_at DESC").
		Order("id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent locations")
	}

	return toLocationDomains(recordModels), nil
}

// FindBetween returns a child's records in [from, to), oldest first.
func (repo *locationRepository) FindBetween(ctx context.Context, childID uuid.UUID, from, to time.Time) ([]*entity.LocationRecord, error) {
	var recordModels []*model.LocationRecordModel

	if err := repo.db.WithContext(ctx).
		Where("child_id = ? AND recorded_at >= ? AND recorded_at < ?", childID, from, to).
		Order("recorded_at ASC").
		Order("id ASC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations in range")
	}

	return toLocationDomains(recordModels), nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationRecordModel) *entity.LocationRecord {
	if data == nil {
		return nil
	}

	return &entity.LocationRecord{
		ID:             data.ID,
		ChildID:        data.ChildID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Accuracy:       data.Accuracy,
		InsideSafeZone: data.InsideSafeZone,
		RecordedAt:     data.RecordedAt,
		ReceivedAt:     data.ReceivedAt,
	}
}

func toLocationDomains(models []*model.LocationRecordModel) []*entity.LocationRecord {
	records := make([]*entity.LocationRecord, 0, len(models))
	for _, recordM := range models {
		records = append(records, toLocationDomain(recordM))
	}

	return records
}

func fromLocationDomain(data *entity.LocationRecord) *model.LocationRecordModel {
	if data == nil {
		return nil
	}

	return &model.LocationRecordModel{
		ID:             data.ID,
		ChildID:        data.ChildID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Accuracy:       data.Accuracy,
		InsideSafeZone: data.InsideSafeZone,
		RecordedAt:     data.RecordedAt,
		ReceivedAt:     data.ReceivedAt,
	}
}

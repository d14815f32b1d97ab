// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"safetrack/internal/domain/entity"
	"safetrack/internal/domain/repository"
	"safetrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// childRepository implements the repository.ChildRepository interface.
type childRepository struct {
	db *gorm.DB
}

// NewChildRepository is the constructor for childRepository.
func NewChildRepository(db *gorm.DB) repository.ChildRepository {
	return &childRepository{
		db: db,
	}
}

// FindActiveBySubjectID retrieves the active child registered under a device subject id.
func (repo *childRepository) FindActiveBySubjectID(ctx context.Context, subjectID string) (*entity.Child, error) {
	var childM model.ChildModel

	if err := repo.db.WithContext(ctx).
		Where("subject_id = ? AND is_active = ?", subjectID, true).
		First(&childM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChildNotFound
		}

		return nil, errors.Wrap(err, "failed to find child by subject id")
	}

	return toChildDomain(&childM), nil
}

// --- Mapper Functions ---

func toChildDomain(data *model.ChildModel) *entity.Child {
	if data == nil {
		return nil
	}

	return &entity.Child{
		ID:        data.ID,
		SubjectID: data.SubjectID,
		FullName:  data.FullName,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

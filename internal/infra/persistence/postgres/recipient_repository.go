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

// recipientRepository implements the repository.RecipientRepository interface.
type recipientRepository struct {
	db *gorm.DB
}

// NewRecipientRepository is the constructor for recipientRepository.
func NewRecipientRepository(db *gorm.DB) repository.RecipientRepository {
	return &recipientRepository{
		db: db,
	}
}

// GuardiansOf returns the active guardians linked to a child.
func (repo *recipientRepository) GuardiansOf(ctx context.Context, childID uuid.UUID) ([]*entity.Recipient, error) {
	var recipientModels []*model.RecipientModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN child_guardians ON child_guardians.guardian_id = users.id").
		Where("child_guardians.child_id = ? AND users.is_active = ?", childID, true).
		Order("child_guardians.created_at ASC").
		Find(&recipientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find guardians")
	}

	return toRecipientDomains(recipientModels), nil
}

// StaffOf returns the active staff assigned to a child.
func (repo *recipientRepository) StaffOf(ctx context.Context, childID uuid.UUID) ([]*entity.Recipient, error) {
	var recipientModels []*model.RecipientModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN child_staff ON child_staff.staff_id = users.id").
		Where("child_staff.child_id = ? AND users.is_active = ?", childID, true).
		Order("child_staff.created_at ASC").
		Find(&recipientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find staff")
	}

	return toRecipientDomains(recipientModels), nil
}

// AllActiveAdmins returns every active administrator.
func (repo *recipientRepository) AllActiveAdmins(ctx context.Context) ([]*entity.Recipient, error) {
	var recipientModels []*model.RecipientModel

	if err := repo.db.WithContext(ctx).
		Where("role = ? AND is_active = ?", string(entity.RecipientRoleAdmin), true).
		Order("created_at ASC").
		Find(&recipientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find admins")
	}

	return toRecipientDomains(recipientModels), nil
}

// FindByIDs returns the active recipients among ids.
func (repo *recipientRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Recipient, error) {
	if len(ids) == 0 {
		return []*entity.Recipient{}, nil
	}

	var recipientModels []*model.RecipientModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&recipientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipients by ids")
	}

	return toRecipientDomains(recipientModels), nil
}

// --- Mapper Functions ---

func toRecipientDomain(data *model.RecipientModel) *entity.Recipient {
	if data == nil {
		return nil
	}

	return &entity.Recipient{
		ID:        data.ID,
		FullName:  data.FullName,
		Phone:     data.Phone,
		Role:      entity.RecipientRole(data.Role),
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toRecipientDomains(models []*model.RecipientModel) []*entity.Recipient {
	recipients := make([]*entity.Recipient, 0, len(models))
	for _, recipientM := range models {
		recipients = append(recipients, toRecipientDomain(recipientM))
	}

	return recipients
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// ChildModel is the GORM-specific struct for the 'children' table.
type ChildModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SubjectID string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	FullName  string    `gorm:"type:text;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChildModel) TableName() string {
	return "children"
}

// ChildGuardianModel links a guardian user to a child.
type ChildGuardianModel struct {
	ChildID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	GuardianID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChildGuardianModel) TableName() string {
	return "child_guardians"
}

// ChildStaffModel assigns a staff user to a child.
type ChildStaffModel struct {
	ChildID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChildStaffModel) TableName() string {
	return "child_staff"
}

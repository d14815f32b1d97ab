package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipientModel is the GORM-specific struct for the portal 'users' table.
// Only the columns the alert pipeline reads are mapped.
type RecipientModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FullName  string    `gorm:"type:text;not null"`
	Phone     string    `gorm:"type:varchar(32)"`
	Role      string    `gorm:"type:varchar(16);not null;index"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (RecipientModel) TableName() string {
	return "users"
}

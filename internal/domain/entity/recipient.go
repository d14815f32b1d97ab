package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecipientRole is the relationship a user has to a tracked child.
type RecipientRole string

const (
	RecipientRoleGuardian RecipientRole = "guardian"
	RecipientRoleStaff    RecipientRole = "staff"
	RecipientRoleAdmin    RecipientRole = "admin"
)

// Recipient is a user eligible to receive safety alerts.
type Recipient struct {
	ID        uuid.UUID     `json:"id"`
	FullName  string        `json:"full_name"`
	Phone     string        `json:"phone"` // Raw, as entered; normalized only at send time.
	Role      RecipientRole `json:"role"`
	IsActive  bool          `json:"is_active"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// HasPhone reports whether the recipient can be reached over SMS.
func (r *Recipient) HasPhone() bool {
	return r != nil && r.Phone != ""
}

package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invitation lets an admin grant a role to someone who has not signed in yet.
// Only a bcrypt hash of the secret half of the token is stored.
type Invitation struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ChurchID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"church_id"`
	Email      string     `gorm:"type:varchar(255);not null;index" json:"email"`
	Role       string     `gorm:"type:varchar(20);not null" json:"role"`
	TokenHash  string     `gorm:"type:varchar(255);not null" json:"-"`
	InvitedBy  string     `gorm:"type:varchar(255);not null" json:"invited_by"`
	ExpiresAt  time.Time  `gorm:"not null;index" json:"expires_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	AcceptedBy string     `gorm:"type:varchar(255)" json:"accepted_by,omitempty"`
	CreatedAt  time.Time  `gorm:"not null" json:"created_at"`

	Church Church `gorm:"foreignKey:ChurchID" json:"-"`
}

func (i *Invitation) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now()
	}
	i.ExpiresAt = i.ExpiresAt.UTC()
	return i.Validate()
}

func (i *Invitation) Validate() error {
	if i.ChurchID == uuid.Nil {
		return ErrMissingChurch
	}
	if !IsValidEmail(i.Email) {
		return errors.New("invalid email format")
	}
	if !IsValidRole(i.Role) {
		return ErrInvalidRole
	}
	if i.TokenHash == "" {
		return errors.New("token hash is required")
	}
	if i.ExpiresAt.IsZero() {
		return errors.New("expiry is required")
	}
	return nil
}

func (i *Invitation) IsAccepted() bool {
	return i.AcceptedAt != nil
}

func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

func (i *Invitation) TableName() string {
	return "invitations"
}

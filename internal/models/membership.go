package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin     = "admin"
	RoleTreasurer = "treasurer"
	RoleSecretary = "secretary"
	RoleViewer    = "viewer"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	ErrInvalidRole = errors.New("invalid role")
)

// Membership grants an identity-provider user a role inside one church.
type Membership struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ChurchID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_church_user" json:"church_id"`
	UserID      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_memberships_church_user" json:"user_id"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email"`
	DisplayName string    `gorm:"type:varchar(255)" json:"display_name,omitempty"`
	Role        string    `gorm:"type:varchar(20);not null;default:'viewer'" json:"role"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	Church Church `gorm:"foreignKey:ChurchID" json:"-"`
}

func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}
	return m.Validate()
}

func (m *Membership) Validate() error {
	if m.ChurchID == uuid.Nil {
		return ErrMissingChurch
	}
	if m.UserID == "" {
		return errors.New("user ID is required")
	}
	if !emailRegex.MatchString(m.Email) {
		return errors.New("invalid email format")
	}
	if !IsValidRole(m.Role) {
		return fmt.Errorf("%w: %s", ErrInvalidRole, m.Role)
	}
	return nil
}

// HasRole reports whether the membership holds any of the given roles.
func (m *Membership) HasRole(roles ...string) bool {
	for _, r := range roles {
		if m.Role == r {
			return true
		}
	}
	return false
}

// Label returns the display name, or the email when none is set.
func (m *Membership) Label() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	return m.Email
}

func (m *Membership) TableName() string {
	return "memberships"
}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleTreasurer, RoleSecretary, RoleViewer:
		return true
	default:
		return false
	}
}

// IsValidEmail reports whether email looks like a deliverable address.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Actor identifies who performs an operation and from where.
type Actor struct {
	UserID    string
	Email     string
	Name      string
	IPAddress string
	UserAgent string
}

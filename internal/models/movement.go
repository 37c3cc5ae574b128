package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MovementStatusActive    = "active"
	MovementStatusCancelled = "cancelled"

	CategoryExchange = "exchange"

	maxCategoryLength = 50
)

var (
	ErrInvalidAmount         = errors.New("movement amount must be positive")
	ErrInvalidMovementStatus = errors.New("invalid movement status")
	ErrMissingChurch         = errors.New("church ID is required")
	ErrMissingDescription    = errors.New("movement description is required")
	ErrMissingOccurredAt     = errors.New("movement date is required")
)

// Movement is a single income or expense entry in a church ledger.
// A currency exchange is stored as an expense and an income sharing an
// ExchangeGroupID.
type Movement struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ChurchID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"church_id"`
	Kind            MovementKind     `gorm:"type:varchar(10);not null" json:"kind"`
	Currency        Currency         `gorm:"type:varchar(3);not null;default:'ARS'" json:"currency"`
	Amount          decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"amount"`
	OccurredAt      time.Time        `gorm:"not null;index" json:"occurred_at"`
	Description     string           `gorm:"type:text;not null" json:"description"`
	Category        string           `gorm:"type:varchar(50)" json:"category,omitempty"`
	ExchangeGroupID *uuid.UUID       `gorm:"type:uuid;index" json:"exchange_group_id,omitempty"`
	ExchangeRate    *decimal.Decimal `gorm:"type:decimal(15,6)" json:"exchange_rate,omitempty"`
	Status          string           `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CancelledAt     *time.Time       `json:"cancelled_at,omitempty"`
	CancelledBy     string           `gorm:"type:varchar(255)" json:"cancelled_by,omitempty"`
	CancelReason    string           `gorm:"type:text" json:"cancel_reason,omitempty"`
	CreatedBy       string           `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt       time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"not null" json:"updated_at"`

	Church Church `gorm:"foreignKey:ChurchID" json:"-"`
}

func (m *Movement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = MovementStatusActive
	}
	m.Currency = NormalizeCurrency(string(m.Currency))
	// stored in UTC so range queries compare instants on every driver
	m.OccurredAt = m.OccurredAt.UTC()

	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}

	return m.Validate()
}

func (m *Movement) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now()
	return nil
}

// Validate checks the fields required to persist a movement.
func (m *Movement) Validate() error {
	if m.ChurchID == uuid.Nil {
		return ErrMissingChurch
	}
	if !m.Kind.IsValid() {
		return ErrInvalidMovementKind
	}
	if !IsSupportedCurrency(NormalizeCurrency(string(m.Currency))) {
		return ErrInvalidCurrency
	}
	if m.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if m.OccurredAt.IsZero() {
		return ErrMissingOccurredAt
	}
	if m.Description == "" {
		return ErrMissingDescription
	}
	if len(m.Category) > maxCategoryLength {
		return errors.New("category too long")
	}
	if m.Status != MovementStatusActive && m.Status != MovementStatusCancelled {
		return ErrInvalidMovementStatus
	}
	return nil
}

func (m *Movement) IsCancelled() bool {
	return m.Status == MovementStatusCancelled
}

func (m *Movement) IsExchange() bool {
	return m.ExchangeGroupID != nil
}

// Cancel marks the movement as cancelled by the given user.
func (m *Movement) Cancel(by, reason string, at time.Time) {
	m.Status = MovementStatusCancelled
	m.CancelledAt = &at
	m.CancelledBy = by
	m.CancelReason = reason
}

// Entry projects the movement for balance computations.
func (m *Movement) Entry() MovementEntry {
	return MovementEntry{
		OccurredAt: m.OccurredAt,
		Amount:     m.Amount,
		Currency:   NormalizeCurrency(string(m.Currency)),
		Kind:       m.Kind,
	}
}

func (m *Movement) TableName() string {
	return "movements"
}

// MovementFilters narrows a movement listing. Zero values are ignored.
type MovementFilters struct {
	ChurchID         uuid.UUID
	Kind             MovementKind
	Currency         Currency
	Category         string
	From             *time.Time
	To               *time.Time
	IncludeCancelled bool
	Offset           int
	Limit            int
}

package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMovement() *Movement {
	return &Movement{
		ChurchID:    uuid.New(),
		Kind:        MovementKindIncome,
		Currency:    CurrencyARS,
		Amount:      decimal.RequireFromString("1500.00"),
		OccurredAt:  time.Date(2026, time.May, 3, 10, 0, 0, 0, time.UTC),
		Description: "Ofrenda dominical",
		Status:      MovementStatusActive,
		CreatedBy:   "auth0|treasurer",
	}
}

func TestMovement_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *Movement)
		want   error
	}{
		{"valid", func(m *Movement) {}, nil},
		{"missing church", func(m *Movement) { m.ChurchID = uuid.Nil }, ErrMissingChurch},
		{"bad kind", func(m *Movement) { m.Kind = "TRANSFER" }, ErrInvalidMovementKind},
		{"unsupported currency", func(m *Movement) { m.Currency = "EUR" }, ErrInvalidCurrency},
		{"zero amount", func(m *Movement) { m.Amount = decimal.Zero }, ErrInvalidAmount},
		{"negative amount", func(m *Movement) { m.Amount = decimal.NewFromInt(-1) }, ErrInvalidAmount},
		{"missing date", func(m *Movement) { m.OccurredAt = time.Time{} }, ErrMissingOccurredAt},
		{"missing description", func(m *Movement) { m.Description = "" }, ErrMissingDescription},
		{"bad status", func(m *Movement) { m.Status = "pending" }, ErrInvalidMovementStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMovement()
			tt.mutate(m)

			err := m.Validate()

			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMovement_BeforeCreate(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	m := validMovement()
	m.Status = ""
	m.Currency = "usd"
	m.OccurredAt = time.Date(2026, time.May, 31, 23, 0, 0, 0, loc)

	require.NoError(t, m.BeforeCreate(nil))

	assert.NotEqual(t, uuid.Nil, m.ID)
	assert.Equal(t, MovementStatusActive, m.Status)
	assert.Equal(t, CurrencyUSD, m.Currency)
	assert.Equal(t, time.UTC, m.OccurredAt.Location())
	assert.Equal(t, time.June, m.OccurredAt.Month())
}

func TestMovement_CancelAndEntry(t *testing.T) {
	m := validMovement()
	at := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, m.IsExchange())
	m.Cancel("auth0|admin", "cargado dos veces", at)

	assert.True(t, m.IsCancelled())
	assert.Equal(t, "auth0|admin", m.CancelledBy)
	assert.Equal(t, at, *m.CancelledAt)

	entry := m.Entry()
	assert.Equal(t, m.OccurredAt, entry.OccurredAt)
	assert.True(t, entry.Amount.Equal(m.Amount))
	assert.Equal(t, CurrencyARS, entry.Currency)
}

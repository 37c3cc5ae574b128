package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCurrency(t *testing.T) {
	assert.Equal(t, CurrencyARS, NormalizeCurrency(""))
	assert.Equal(t, CurrencyARS, NormalizeCurrency("  "))
	assert.Equal(t, CurrencyUSD, NormalizeCurrency(" usd "))
	assert.Equal(t, Currency("EUR"), NormalizeCurrency("eur"))
	assert.False(t, IsSupportedCurrency("EUR"))
}

func TestParseMovementKind(t *testing.T) {
	kind, err := ParseMovementKind("income")
	require.NoError(t, err)
	assert.Equal(t, MovementKindIncome, kind)

	_, err = ParseMovementKind("refund")
	assert.ErrorIs(t, err, ErrInvalidMovementKind)
}

func TestBalances_ApplyAndClone(t *testing.T) {
	b := NewBalances()
	assert.True(t, b[CurrencyARS].IsZero())
	assert.True(t, b[CurrencyUSD].IsZero())

	b.Apply(MovementKindIncome, CurrencyARS, decimal.RequireFromString("100.50"))
	b.Apply(MovementKindExpense, CurrencyARS, decimal.RequireFromString("20.25"))
	b.Apply(MovementKindExpense, Currency("EUR"), decimal.NewFromInt(5))

	assert.Equal(t, "80.25", b[CurrencyARS].StringFixed(2))
	assert.Equal(t, "-5.00", b["EUR"].StringFixed(2))

	clone := b.Clone()
	clone.Apply(MovementKindIncome, CurrencyARS, decimal.NewFromInt(1))

	assert.Equal(t, "80.25", b[CurrencyARS].StringFixed(2))
	assert.Equal(t, "81.25", clone[CurrencyARS].StringFixed(2))
}

func TestNewAggregate(t *testing.T) {
	agg, err := NewAggregate("", "EXPENSE", decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Equal(t, CurrencyARS, agg.Currency)
	assert.Equal(t, MovementKindExpense, agg.Kind)

	_, err = NewAggregate("USD", "", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, ErrInvalidMovementKind)
}

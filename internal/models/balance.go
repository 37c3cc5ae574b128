package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Balances maps a currency to a signed running total.
type Balances map[Currency]decimal.Decimal

// NewBalances returns balances with every ledger currency seeded at zero.
func NewBalances() Balances {
	b := make(Balances, len(LedgerCurrencies))
	for _, c := range LedgerCurrencies {
		b[c] = decimal.Zero
	}
	return b
}

// Apply adds income and subtracts expense. A currency seen for the first
// time starts from zero.
func (b Balances) Apply(kind MovementKind, currency Currency, amount decimal.Decimal) {
	current := b[currency]
	switch kind {
	case MovementKindIncome:
		b[currency] = current.Add(amount)
	case MovementKindExpense:
		b[currency] = current.Sub(amount)
	}
}

// Clone returns an independent copy.
func (b Balances) Clone() Balances {
	out := make(Balances, len(b))
	for c, v := range b {
		out[c] = v
	}
	return out
}

// Aggregate is one row of a grouped sum by currency and kind.
type Aggregate struct {
	Currency Currency        `json:"currency"`
	Kind     MovementKind    `json:"kind"`
	Total    decimal.Decimal `json:"total"`
}

// NewAggregate validates a raw grouped-sum row. A missing currency is
// treated as ARS; an unknown kind is rejected.
func NewAggregate(currency, kind string, total decimal.Decimal) (Aggregate, error) {
	k, err := ParseMovementKind(kind)
	if err != nil {
		return Aggregate{}, err
	}
	return Aggregate{
		Currency: NormalizeCurrency(currency),
		Kind:     k,
		Total:    total,
	}, nil
}

// MovementEntry is the dated, signed projection of a movement used for
// balance computations.
type MovementEntry struct {
	OccurredAt time.Time       `json:"occurred_at"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   Currency        `json:"currency"`
	Kind       MovementKind    `json:"kind"`
}

// MonthlyPoint is the balance snapshot at the end of one calendar month.
type MonthlyPoint struct {
	Label    string     `json:"label"`
	Year     int        `json:"year"`
	Month    time.Month `json:"month"`
	Balances Balances   `json:"balances"`
}

// AnnualTotals holds income and expense sums for one currency over a year.
type AnnualTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// BalanceReport is the dashboard view of a church's finances.
type BalanceReport struct {
	ChurchID         uuid.UUID                 `json:"church_id"`
	AsOf             time.Time                 `json:"as_of"`
	Year             int                       `json:"year"`
	BaseBalances     Balances                  `json:"base_balances"`
	MonthlyEvolution []MonthlyPoint            `json:"monthly_evolution"`
	CurrentBalance   Balances                  `json:"current_balance"`
	AnnualSummary    map[Currency]AnnualTotals `json:"annual_summary"`
	GeneratedAt      time.Time                 `json:"generated_at"`
}

func (r *BalanceReport) String() string {
	return fmt.Sprintf("BalanceReport[church=%s year=%d ARS=%s USD=%s]",
		r.ChurchID, r.Year, r.CurrentBalance[CurrencyARS].String(), r.CurrentBalance[CurrencyUSD].String())
}

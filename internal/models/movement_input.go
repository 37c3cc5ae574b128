package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementInput is a single income or expense to record.
type MovementInput struct {
	Kind        MovementKind
	Currency    Currency
	Amount      decimal.Decimal
	OccurredAt  time.Time
	Description string
	Category    string
}

// ExchangeInput converts Amount of FromCurrency into ToCurrency at Rate
// units of ToCurrency per unit of FromCurrency.
type ExchangeInput struct {
	FromCurrency Currency
	ToCurrency   Currency
	Amount       decimal.Decimal
	Rate         decimal.Decimal
	OccurredAt   time.Time
	Description  string
}

// CreatedInvitation carries the plaintext token, which is only available
// at creation time.
type CreatedInvitation struct {
	Invitation *Invitation
	Token      string
}

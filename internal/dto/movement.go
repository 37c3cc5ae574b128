package dto

import (
	"church-admin/internal/models"
)

// Movement Request DTOs

// RecordMovementRequest represents the request payload for recording an income or expense.
// OccurredAt accepts a date (2006-01-02) or an RFC 3339 timestamp.
type RecordMovementRequest struct {
	Kind        string `json:"kind" validate:"required,movement_kind"`
	Currency    string `json:"currency" validate:"omitempty,currency"`
	Amount      string `json:"amount" validate:"required,decimal_positive"`
	OccurredAt  string `json:"occurred_at" validate:"required"`
	Description string `json:"description" validate:"required,min=1,max=255"`
	Category    string `json:"category" validate:"omitempty,max=50"`
}

// RecordExchangeRequest represents the request payload for a currency exchange.
// Rate is expressed in units of to_currency per unit of from_currency.
type RecordExchangeRequest struct {
	FromCurrency string `json:"from_currency" validate:"required,currency"`
	ToCurrency   string `json:"to_currency" validate:"required,currency"`
	Amount       string `json:"amount" validate:"required,decimal_positive"`
	Rate         string `json:"rate" validate:"required,decimal_positive=6"`
	OccurredAt   string `json:"occurred_at" validate:"required"`
	Description  string `json:"description" validate:"required,min=1,max=255"`
}

// CancelMovementRequest represents the request payload for cancelling a movement
type CancelMovementRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// Movement Response DTOs

// MovementListResponse represents a paginated list of movements
type MovementListResponse struct {
	Movements  []models.Movement `json:"movements"`
	Pagination PaginationInfo    `json:"pagination"`
}

// ExchangeResponse holds both legs of a recorded exchange
type ExchangeResponse struct {
	Outgoing models.Movement `json:"outgoing"`
	Incoming models.Movement `json:"incoming"`
}

// CancelMovementResponse lists every movement cancelled by the request
type CancelMovementResponse struct {
	Cancelled []models.Movement `json:"cancelled"`
}

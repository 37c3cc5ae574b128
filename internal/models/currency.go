package models

import (
	"errors"
	"fmt"
	"strings"
)

// Currency is an ISO-4217 style code. ARS and USD are the supported
// ledger currencies; other codes are carried through verbatim.
type Currency string

const (
	CurrencyARS Currency = "ARS"
	CurrencyUSD Currency = "USD"

	DefaultCurrency = CurrencyARS
)

// MovementKind tells whether a movement adds to or subtracts from a balance.
type MovementKind string

const (
	MovementKindIncome  MovementKind = "INCOME"
	MovementKindExpense MovementKind = "EXPENSE"
)

var (
	ErrInvalidCurrency     = errors.New("invalid currency")
	ErrInvalidMovementKind = errors.New("invalid movement kind")
)

// LedgerCurrencies are seeded at zero in every balance computation.
var LedgerCurrencies = []Currency{CurrencyARS, CurrencyUSD}

// NormalizeCurrency upper-cases the code and falls back to ARS when empty.
func NormalizeCurrency(code string) Currency {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultCurrency
	}
	return Currency(code)
}

// IsSupportedCurrency reports whether movements may be recorded in c.
func IsSupportedCurrency(c Currency) bool {
	return c == CurrencyARS || c == CurrencyUSD
}

// ParseMovementKind accepts the kind in any letter case.
func ParseMovementKind(kind string) (MovementKind, error) {
	switch MovementKind(strings.ToUpper(strings.TrimSpace(kind))) {
	case MovementKindIncome:
		return MovementKindIncome, nil
	case MovementKindExpense:
		return MovementKindExpense, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMovementKind, kind)
	}
}

func (k MovementKind) IsValid() bool {
	return k == MovementKindIncome || k == MovementKindExpense
}

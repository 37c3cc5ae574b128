// Package rollup computes running balances, the trailing twelve-month
// evolution and annual totals from pre-fetched ledger data. It performs
// no I/O; callers supply sorted, tenant-scoped, non-cancelled input.
package rollup

import (
	"fmt"
	"time"

	"church-admin/internal/models"

	"github.com/shopspring/decimal"
)

// WindowMonths is the length of the balance evolution series.
const WindowMonths = 12

var monthLabels = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

// Input is everything the engine needs for one report.
//
// BaseAggregates cover movements strictly before the window start,
// WindowMovements cover the window itself sorted ascending by date, and
// AnnualAggregates cover January 1 through December 31 of TargetYear.
type Input struct {
	AsOf             time.Time
	TargetYear       int
	BaseAggregates   []models.Aggregate
	WindowMovements  []models.MovementEntry
	AnnualAggregates []models.Aggregate
}

// Window returns the first instant of the trailing window ending at
// asOf's month, and the first instant of the month after asOf. Both are
// in asOf's location.
func Window(asOf time.Time) (start, end time.Time) {
	current := monthStart(asOf)
	return current.AddDate(0, -(WindowMonths - 1), 0), current.AddDate(0, 1, 0)
}

// YearBounds returns [Jan 1 of year, Jan 1 of year+1) in loc.
func YearBounds(year int, loc *time.Location) (start, end time.Time) {
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(1, 0, 0)
}

// Compute builds the balance report for in. It never fails: malformed
// input yields an arithmetically consistent but meaningless report.
func Compute(in Input) *models.BalanceReport {
	base := models.NewBalances()
	applyAggregates(base, in.BaseAggregates)

	running := base.Clone()
	evolution := make([]models.MonthlyPoint, 0, WindowMonths)

	start, _ := Window(in.AsOf)
	cursor := 0
	for i := 0; i < WindowMonths; i++ {
		month := start.AddDate(0, i, 0)
		next := month.AddDate(0, 1, 0)

		for cursor < len(in.WindowMovements) && in.WindowMovements[cursor].OccurredAt.Before(next) {
			apply(running, in.WindowMovements[cursor])
			cursor++
		}

		evolution = append(evolution, models.MonthlyPoint{
			Label:    Label(month),
			Year:     month.Year(),
			Month:    month.Month(),
			Balances: running.Clone(),
		})
	}

	// Movements dated after the current month still count toward the total.
	for ; cursor < len(in.WindowMovements); cursor++ {
		apply(running, in.WindowMovements[cursor])
	}

	return &models.BalanceReport{
		AsOf:             in.AsOf,
		Year:             in.TargetYear,
		BaseBalances:     base,
		MonthlyEvolution: evolution,
		CurrentBalance:   running,
		AnnualSummary:    Annual(in.AnnualAggregates),
	}
}

// Annual sums income and expense per currency from year-bounded
// aggregates. It is independent of the running balance.
func Annual(aggregates []models.Aggregate) map[models.Currency]models.AnnualTotals {
	summary := make(map[models.Currency]models.AnnualTotals, len(models.LedgerCurrencies))
	for _, c := range models.LedgerCurrencies {
		summary[c] = models.AnnualTotals{Income: decimal.Zero, Expense: decimal.Zero, Balance: decimal.Zero}
	}

	for _, agg := range aggregates {
		currency := models.NormalizeCurrency(string(agg.Currency))
		totals, ok := summary[currency]
		if !ok {
			totals = models.AnnualTotals{Income: decimal.Zero, Expense: decimal.Zero}
		}
		switch agg.Kind {
		case models.MovementKindIncome:
			totals.Income = totals.Income.Add(agg.Total)
		case models.MovementKindExpense:
			totals.Expense = totals.Expense.Add(agg.Total)
		}
		totals.Balance = totals.Income.Sub(totals.Expense)
		summary[currency] = totals
	}

	return summary
}

// Label renders a month as a short Spanish month name and year, e.g. "ene 2026".
func Label(t time.Time) string {
	return fmt.Sprintf("%s %d", monthLabels[t.Month()-1], t.Year())
}

func applyAggregates(b models.Balances, aggregates []models.Aggregate) {
	for _, agg := range aggregates {
		b.Apply(agg.Kind, models.NormalizeCurrency(string(agg.Currency)), agg.Total)
	}
}

func apply(b models.Balances, m models.MovementEntry) {
	b.Apply(m.Kind, models.NormalizeCurrency(string(m.Currency)), m.Amount)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

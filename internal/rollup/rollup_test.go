package rollup

import (
	"testing"
	"time"

	"church-admin/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var buenosAires = time.FixedZone("ART", -3*60*60)

func asOf() time.Time {
	return time.Date(2026, time.October, 15, 12, 30, 0, 0, buenosAires)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, dec(expected).Equal(actual), "expected %s, got %s %v", expected, actual.String(), msgAndArgs)
}

func entry(at time.Time, amount string, currency models.Currency, kind models.MovementKind) models.MovementEntry {
	return models.MovementEntry{OccurredAt: at, Amount: dec(amount), Currency: currency, Kind: kind}
}

func TestWindow(t *testing.T) {
	start, end := Window(asOf())

	assert.Equal(t, time.Date(2025, time.November, 1, 0, 0, 0, 0, buenosAires), start)
	assert.Equal(t, time.Date(2026, time.November, 1, 0, 0, 0, 0, buenosAires), end)
}

func TestWindow_January(t *testing.T) {
	start, end := Window(time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestYearBounds(t *testing.T) {
	start, end := YearBounds(2025, buenosAires)

	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, buenosAires), start)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, buenosAires), end)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "ene 2026", Label(time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "dic 2025", Label(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)))
}

func TestCompute_BaseOnlyKeepsFlatSeries(t *testing.T) {
	report := Compute(Input{
		AsOf:       asOf(),
		TargetYear: 2026,
		BaseAggregates: []models.Aggregate{
			{Currency: models.CurrencyARS, Kind: models.MovementKindIncome, Total: dec("1000")},
			{Currency: models.CurrencyARS, Kind: models.MovementKindExpense, Total: dec("400")},
		},
	})

	assertDecimal(t, "600", report.BaseBalances[models.CurrencyARS])
	require.Len(t, report.MonthlyEvolution, WindowMonths)
	for i, point := range report.MonthlyEvolution {
		assertDecimal(t, "600", point.Balances[models.CurrencyARS], "month", i)
		assertDecimal(t, "0", point.Balances[models.CurrencyUSD], "month", i)
	}
	assertDecimal(t, "600", report.CurrentBalance[models.CurrencyARS])
}

func TestCompute_MovementAppearsFromItsMonthOnward(t *testing.T) {
	sixthMonth := time.Date(2026, time.April, 12, 10, 0, 0, 0, buenosAires)

	report := Compute(Input{
		AsOf:            asOf(),
		TargetYear:      2026,
		WindowMovements: []models.MovementEntry{entry(sixthMonth, "500", models.CurrencyARS, models.MovementKindIncome)},
	})

	require.Len(t, report.MonthlyEvolution, WindowMonths)
	for i := 0; i < 5; i++ {
		assertDecimal(t, "0", report.MonthlyEvolution[i].Balances[models.CurrencyARS], "month", i+1)
	}
	for i := 5; i < WindowMonths; i++ {
		assertDecimal(t, "500", report.MonthlyEvolution[i].Balances[models.CurrencyARS], "month", i+1)
	}
	assertDecimal(t, "500", report.CurrentBalance[models.CurrencyARS])
	assert.Equal(t, "abr 2026", report.MonthlyEvolution[5].Label)
}

func TestCompute_AnnualSummaryIndependentOfWindow(t *testing.T) {
	report := Compute(Input{
		AsOf:       asOf(),
		TargetYear: 2025,
		WindowMovements: []models.MovementEntry{
			entry(time.Date(2025, time.December, 2, 0, 0, 0, 0, buenosAires), "99999", models.CurrencyARS, models.MovementKindIncome),
		},
		AnnualAggregates: []models.Aggregate{
			{Currency: models.CurrencyARS, Kind: models.MovementKindIncome, Total: dec("2000")},
			{Currency: models.CurrencyARS, Kind: models.MovementKindExpense, Total: dec("1200")},
		},
	})

	ars := report.AnnualSummary[models.CurrencyARS]
	assertDecimal(t, "2000", ars.Income)
	assertDecimal(t, "1200", ars.Expense)
	assertDecimal(t, "800", ars.Balance)

	usd := report.AnnualSummary[models.CurrencyUSD]
	assertDecimal(t, "0", usd.Income)
	assertDecimal(t, "0", usd.Expense)
	assertDecimal(t, "0", usd.Balance)
	assert.Equal(t, 2025, report.Year)
}

func TestCompute_UnknownCurrencyGetsItsOwnKey(t *testing.T) {
	report := Compute(Input{
		AsOf: asOf(),
		BaseAggregates: []models.Aggregate{
			{Currency: models.CurrencyUSD, Kind: models.MovementKindIncome, Total: dec("50")},
		},
		WindowMovements: []models.MovementEntry{
			entry(time.Date(2026, time.March, 1, 9, 0, 0, 0, buenosAires), "75.25", "EUR", models.MovementKindExpense),
		},
	})

	eur, ok := report.CurrentBalance["EUR"]
	require.True(t, ok)
	assertDecimal(t, "-75.25", eur)
	assertDecimal(t, "0", report.CurrentBalance[models.CurrencyARS])
	assertDecimal(t, "50", report.CurrentBalance[models.CurrencyUSD])

	_, before := report.MonthlyEvolution[3].Balances["EUR"]
	assert.False(t, before, "EUR should not exist before its first movement")
	assertDecimal(t, "-75.25", report.MonthlyEvolution[4].Balances["EUR"])
}

func TestCompute_EmptyCurrencyDefaultsToARS(t *testing.T) {
	report := Compute(Input{
		AsOf: asOf(),
		BaseAggregates: []models.Aggregate{
			{Currency: "", Kind: models.MovementKindIncome, Total: dec("10")},
		},
		WindowMovements: []models.MovementEntry{
			entry(time.Date(2026, time.June, 1, 0, 0, 0, 0, buenosAires), "5", "", models.MovementKindIncome),
		},
		AnnualAggregates: []models.Aggregate{
			{Currency: "", Kind: models.MovementKindExpense, Total: dec("3")},
		},
	})

	assertDecimal(t, "15", report.CurrentBalance[models.CurrencyARS])
	assertDecimal(t, "3", report.AnnualSummary[models.CurrencyARS].Expense)
	_, blank := report.CurrentBalance[""]
	assert.False(t, blank)
}

func TestCompute_MonthBoundaryBelongsToEndingMonth(t *testing.T) {
	lastInstant := time.Date(2026, time.April, 30, 23, 59, 59, int(999*time.Millisecond), buenosAires)
	firstInstant := time.Date(2026, time.May, 1, 0, 0, 0, 0, buenosAires)

	report := Compute(Input{
		AsOf: asOf(),
		WindowMovements: []models.MovementEntry{
			entry(lastInstant, "100", models.CurrencyUSD, models.MovementKindIncome),
			entry(firstInstant, "30", models.CurrencyUSD, models.MovementKindExpense),
		},
	})

	assertDecimal(t, "0", report.MonthlyEvolution[4].Balances[models.CurrencyUSD])
	assertDecimal(t, "100", report.MonthlyEvolution[5].Balances[models.CurrencyUSD])
	assertDecimal(t, "70", report.MonthlyEvolution[6].Balances[models.CurrencyUSD])
}

func TestCompute_FutureMovementsCountTowardCurrentBalance(t *testing.T) {
	report := Compute(Input{
		AsOf: asOf(),
		WindowMovements: []models.MovementEntry{
			entry(time.Date(2026, time.October, 31, 23, 0, 0, 0, buenosAires), "10", models.CurrencyARS, models.MovementKindIncome),
			entry(time.Date(2026, time.November, 1, 0, 0, 1, 0, buenosAires), "40", models.CurrencyARS, models.MovementKindIncome),
		},
	})

	last := report.MonthlyEvolution[WindowMonths-1]
	assertDecimal(t, "10", last.Balances[models.CurrencyARS])
	assertDecimal(t, "50", report.CurrentBalance[models.CurrencyARS])
}

func TestCompute_ConservesTotals(t *testing.T) {
	base := []models.Aggregate{
		{Currency: models.CurrencyARS, Kind: models.MovementKindIncome, Total: dec("1234.56")},
		{Currency: models.CurrencyUSD, Kind: models.MovementKindExpense, Total: dec("20")},
	}

	var window []models.MovementEntry
	start, _ := Window(asOf())
	for i := 0; i < 40; i++ {
		kind := models.MovementKindIncome
		if i%3 == 0 {
			kind = models.MovementKindExpense
		}
		currency := models.CurrencyARS
		if i%2 == 0 {
			currency = models.CurrencyUSD
		}
		at := start.Add(time.Duration(i) * 9 * 24 * time.Hour)
		window = append(window, entry(at, decimal.NewFromInt(int64(i+1)).Mul(dec("1.25")).String(), currency, kind))
	}

	report := Compute(Input{AsOf: asOf(), BaseAggregates: base, WindowMovements: window})

	expected := models.NewBalances()
	for _, agg := range base {
		expected.Apply(agg.Kind, agg.Currency, agg.Total)
	}
	for _, m := range window {
		expected.Apply(m.Kind, m.Currency, m.Amount)
	}

	for currency, want := range expected {
		assertDecimal(t, want.String(), report.CurrentBalance[currency], "currency", currency)
	}
}

func TestCompute_EachMovementAppliedOnce(t *testing.T) {
	start, _ := Window(asOf())
	var window []models.MovementEntry
	for i := 0; i < WindowMonths; i++ {
		window = append(window, entry(start.AddDate(0, i, 14), "1", models.CurrencyARS, models.MovementKindIncome))
	}

	report := Compute(Input{AsOf: asOf(), WindowMovements: window})

	for i, point := range report.MonthlyEvolution {
		assertDecimal(t, decimal.NewFromInt(int64(i+1)).String(), point.Balances[models.CurrencyARS], "month", i)
	}
	assertDecimal(t, "12", report.CurrentBalance[models.CurrencyARS])
}

func TestCompute_Idempotent(t *testing.T) {
	in := Input{
		AsOf:       asOf(),
		TargetYear: 2026,
		BaseAggregates: []models.Aggregate{
			{Currency: models.CurrencyARS, Kind: models.MovementKindIncome, Total: dec("10")},
		},
		WindowMovements: []models.MovementEntry{
			entry(time.Date(2026, time.February, 1, 0, 0, 0, 0, buenosAires), "3", models.CurrencyUSD, models.MovementKindIncome),
		},
		AnnualAggregates: []models.Aggregate{
			{Currency: models.CurrencyUSD, Kind: models.MovementKindIncome, Total: dec("3")},
		},
	}

	first := Compute(in)
	second := Compute(in)

	assert.Equal(t, first, second)
}

func TestCompute_SnapshotsAreIndependent(t *testing.T) {
	report := Compute(Input{
		AsOf: asOf(),
		WindowMovements: []models.MovementEntry{
			entry(time.Date(2026, time.January, 5, 0, 0, 0, 0, buenosAires), "1", models.CurrencyARS, models.MovementKindIncome),
		},
	})

	report.MonthlyEvolution[0].Balances[models.CurrencyARS] = dec("999")

	assertDecimal(t, "0", report.MonthlyEvolution[1].Balances[models.CurrencyARS])
	assertDecimal(t, "1", report.CurrentBalance[models.CurrencyARS])
}

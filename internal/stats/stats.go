// Package stats is the read-side period aggregator. Everything here is a
// pure projection recomputed on demand from the full transaction list, which
// is acceptable at the expected volumes of hundreds to low thousands of
// records. Period boundaries come from the period package.
package stats

import (
	"time"

	"duitku/internal/models"
	"duitku/internal/period"
)

// TypeTotals sums transaction amounts by type.
type TypeTotals struct {
	Income   int64 `json:"income"`
	Expense  int64 `json:"expense"`
	Transfer int64 `json:"transfer"`
	Save     int64 `json:"save"`
}

// DayTotal is one day of the trailing series.
type DayTotal struct {
	Date    time.Time `json:"date"`
	Income  int64     `json:"income"`
	Expense int64     `json:"expense"`
}

// WindowSummary aggregates a single window plus the trailing seven calendar
// days and the expense-by-category breakdown for the window.
type WindowSummary struct {
	Window       period.Window             `json:"window"`
	From         time.Time                 `json:"from"`
	To           time.Time                 `json:"to"`
	Totals       TypeTotals                `json:"totals"`
	ByCategory   map[models.Category]int64 `json:"by_category"`
	TrailingWeek []DayTotal                `json:"trailing_week"`
}

// TotalsInRange sums amounts by type over [from, to).
func TotalsInRange(txns []models.Transaction, from, to time.Time) TypeTotals {
	var totals TypeTotals
	for _, txn := range txns {
		if !period.Contains(txn.Date, from, to) {
			continue
		}
		switch txn.Type {
		case models.TransactionTypeIncome:
			totals.Income += txn.Amount
		case models.TransactionTypeExpense:
			totals.Expense += txn.Amount
		case models.TransactionTypeTransfer:
			totals.Transfer += txn.Amount
		case models.TransactionTypeSave:
			totals.Save += txn.Amount
		}
	}
	return totals
}

// CategoryBreakdown sums expense amounts by category over [from, to).
// Expenses with no category recorded count under lainnya.
func CategoryBreakdown(txns []models.Transaction, from, to time.Time) map[models.Category]int64 {
	breakdown := make(map[models.Category]int64)
	for _, txn := range txns {
		if txn.Type != models.TransactionTypeExpense || !period.Contains(txn.Date, from, to) {
			continue
		}
		category := models.CategoryLainnya
		if txn.Category != nil {
			category = *txn.Category
		}
		breakdown[category] += txn.Amount
	}
	return breakdown
}

// TrailingDays returns per-day income and expense totals for the n calendar
// days ending on now's day, oldest first.
func TrailingDays(txns []models.Transaction, now time.Time, n int) []DayTotal {
	series := make([]DayTotal, n)
	first := period.StartOfDay(now).AddDate(0, 0, -(n - 1))
	for i := range series {
		series[i].Date = first.AddDate(0, 0, i)
	}

	for _, txn := range txns {
		day := period.StartOfDay(txn.Date)
		idx := int(day.Sub(first).Hours() / 24)
		if idx < 0 || idx >= n {
			continue
		}
		switch txn.Type {
		case models.TransactionTypeIncome:
			series[idx].Income += txn.Amount
		case models.TransactionTypeExpense:
			series[idx].Expense += txn.Amount
		}
	}
	return series
}

// Summarize builds the full statistics payload for one window.
func Summarize(txns []models.Transaction, w period.Window, now time.Time) WindowSummary {
	from, to := period.Range(w, now)
	return WindowSummary{
		Window:       w,
		From:         from,
		To:           to,
		Totals:       TotalsInRange(txns, from, to),
		ByCategory:   CategoryBreakdown(txns, from, to),
		TrailingWeek: TrailingDays(txns, now, 7),
	}
}

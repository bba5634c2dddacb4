// Package budget classifies prospective cash expenses against the daily
// cash-spending limit. Evaluation is pure: it never mutates state and is
// distinct from the mandatory balance-sufficiency gate enforced by the
// orchestrator.
package budget

import (
	"fmt"
	"time"

	"duitku/internal/models"
	"duitku/internal/period"
)

// Level classifies a prospective cash expense.
type Level string

const (
	// LevelOK means the projected total stays comfortably under the limit.
	LevelOK Level = "ok"
	// LevelWarning means the projected total reaches 80% of the limit.
	// No confirmation is required.
	LevelWarning Level = "warning"
	// LevelExceeded means the projected total goes over the limit. The
	// caller may still proceed after an explicit second confirmation; this
	// is a soft violation, not a rejection.
	LevelExceeded Level = "exceeded"
)

// Evaluation is the result of classifying a prospective cash expense.
type Evaluation struct {
	Level     Level  `json:"level"`
	Message   string `json:"message,omitempty"`
	Projected int64  `json:"projected"`
	Limit     int64  `json:"limit"`
}

// Evaluate classifies a prospective cash expense given today's cash expense
// total and the configured daily limit. Thresholds use integer arithmetic:
// the 80% warning line is projected*5 >= limit*4.
func Evaluate(prospective, todayTotal, limit int64) Evaluation {
	projected := todayTotal + prospective
	ev := Evaluation{Level: LevelOK, Projected: projected, Limit: limit}

	switch {
	case projected > limit:
		ev.Level = LevelExceeded
		ev.Message = fmt.Sprintf("this expense puts today's cash spending at %d, over the daily limit of %d", projected, limit)
	case projected*5 >= limit*4:
		ev.Level = LevelWarning
		ev.Message = fmt.Sprintf("today's cash spending would reach %d of the %d daily limit", projected, limit)
	}
	return ev
}

// CashSpentOn sums cash expenses dated on the given calendar day. The day
// boundary comes from the period package, the same rule the statistics
// aggregator uses.
func CashSpentOn(txns []models.Transaction, day time.Time) int64 {
	var total int64
	for _, txn := range txns {
		if txn.Type != models.TransactionTypeExpense || txn.Account != models.AccountCash {
			continue
		}
		if period.SameDay(txn.Date, day) {
			total += txn.Amount
		}
	}
	return total
}

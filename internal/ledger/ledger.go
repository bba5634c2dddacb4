// Package ledger implements the balance-mutation engine: the deterministic
// mapping from a transaction to deltas on the bank, cash, and savings
// balances, and its exact inverse. Both persistence strategies share this
// single implementation so the two stores can never drift.
package ledger

import "duitku/internal/models"

// Delta is the effect of one transaction on the three balances.
// Amounts are whole rupiah; all arithmetic is integer, so applying a delta
// and then its negation restores the previous balances exactly.
type Delta struct {
	Bank    int64
	Cash    int64
	Savings int64
}

// Negate returns the delta with every sign flipped.
func (d Delta) Negate() Delta {
	return Delta{Bank: -d.Bank, Cash: -d.Cash, Savings: -d.Savings}
}

// IsZero reports whether the delta has no effect.
func (d Delta) IsZero() bool {
	return d.Bank == 0 && d.Cash == 0 && d.Savings == 0
}

// ApplyTo returns balances with the delta added. The three fields change as
// one logical step; there is no partial application.
func (d Delta) ApplyTo(b models.Balances) models.Balances {
	return models.Balances{
		Bank:    b.Bank + d.Bank,
		Cash:    b.Cash + d.Cash,
		Savings: b.Savings + d.Savings,
	}
}

// Apply computes the delta for a transaction of the given shape. Amount is
// assumed positive; the validated intent layer enforces that before the
// ledger is reached.
//
// Undefined shapes (income into savings, transfer without a counter-account)
// produce a zero delta rather than a crash: the validation layer rejects
// them, this is only a guard.
func Apply(t models.TransactionType, amount int64, account models.AccountType, target *models.AccountType) Delta {
	switch t {
	case models.TransactionTypeIncome:
		switch account {
		case models.AccountBank:
			return Delta{Bank: amount}
		case models.AccountCash:
			return Delta{Cash: amount}
		}
	case models.TransactionTypeExpense:
		switch account {
		case models.AccountBank:
			return Delta{Bank: -amount}
		case models.AccountCash:
			return Delta{Cash: -amount}
		case models.AccountSavings:
			return Delta{Savings: -amount}
		}
	case models.TransactionTypeTransfer:
		if target == nil {
			return Delta{}
		}
		switch {
		case account == models.AccountBank && *target == models.AccountCash:
			return Delta{Bank: -amount, Cash: amount}
		case account == models.AccountCash && *target == models.AccountBank:
			return Delta{Cash: -amount, Bank: amount}
		}
	case models.TransactionTypeSave:
		switch account {
		case models.AccountBank:
			return Delta{Bank: -amount, Savings: amount}
		case models.AccountCash:
			return Delta{Cash: -amount, Savings: amount}
		}
	}
	return Delta{}
}

// ApplyTransaction computes the delta for a stored transaction.
func ApplyTransaction(txn models.Transaction) Delta {
	return Apply(txn.Type, txn.Amount, txn.Account, txn.TargetAccount)
}

// Reverse computes the delta that undoes a stored transaction. It is defined
// as Apply with every sign flipped for the same (type, amount, account,
// targetAccount) tuple, so apply-then-reverse restores the prior balances
// exactly.
func Reverse(txn models.Transaction) Delta {
	return ApplyTransaction(txn).Negate()
}

// Replay derives balances from zero by applying every transaction in the
// list. The result is independent of order since deltas only add.
func Replay(txns []models.Transaction) models.Balances {
	var b models.Balances
	for _, txn := range txns {
		b = ApplyTransaction(txn).ApplyTo(b)
	}
	return b
}

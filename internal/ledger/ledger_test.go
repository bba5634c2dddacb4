package ledger

import (
	"testing"
	"time"

	"duitku/internal/models"
)

func target(a models.AccountType) *models.AccountType { return &a }

func txn(t models.TransactionType, amount int64, account models.AccountType, to *models.AccountType) models.Transaction {
	return models.Transaction{
		ID:            "test",
		Type:          t,
		Amount:        amount,
		Account:       account,
		TargetAccount: to,
		Date:          time.Now().UTC(),
	}
}

func TestApply(t *testing.T) {
	cases := []struct {
		name string
		txn  models.Transaction
		want Delta
	}{
		{"income_bank", txn(models.TransactionTypeIncome, 5000, models.AccountBank, nil), Delta{Bank: 5000}},
		{"income_cash", txn(models.TransactionTypeIncome, 5000, models.AccountCash, nil), Delta{Cash: 5000}},
		{"expense_bank", txn(models.TransactionTypeExpense, 3000, models.AccountBank, nil), Delta{Bank: -3000}},
		{"expense_cash", txn(models.TransactionTypeExpense, 3000, models.AccountCash, nil), Delta{Cash: -3000}},
		{"expense_savings", txn(models.TransactionTypeExpense, 3000, models.AccountSavings, nil), Delta{Savings: -3000}},
		{"transfer_bank_to_cash", txn(models.TransactionTypeTransfer, 20000, models.AccountBank, target(models.AccountCash)), Delta{Bank: -20000, Cash: 20000}},
		{"transfer_cash_to_bank", txn(models.TransactionTypeTransfer, 20000, models.AccountCash, target(models.AccountBank)), Delta{Cash: -20000, Bank: 20000}},
		{"save_from_bank", txn(models.TransactionTypeSave, 10000, models.AccountBank, nil), Delta{Bank: -10000, Savings: 10000}},
		{"save_from_cash", txn(models.TransactionTypeSave, 10000, models.AccountCash, nil), Delta{Cash: -10000, Savings: 10000}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ApplyTransaction(tc.txn)
			if got != tc.want {
				t.Errorf("ApplyTransaction() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestApplyGuards(t *testing.T) {
	t.Run("income_into_savings_is_noop", func(t *testing.T) {
		got := Apply(models.TransactionTypeIncome, 1000, models.AccountSavings, nil)
		if !got.IsZero() {
			t.Errorf("expected zero delta, got %+v", got)
		}
	})

	t.Run("transfer_without_target_is_noop", func(t *testing.T) {
		got := Apply(models.TransactionTypeTransfer, 1000, models.AccountBank, nil)
		if !got.IsZero() {
			t.Errorf("expected zero delta, got %+v", got)
		}
	})

	t.Run("transfer_involving_savings_is_noop", func(t *testing.T) {
		got := Apply(models.TransactionTypeTransfer, 1000, models.AccountBank, target(models.AccountSavings))
		if !got.IsZero() {
			t.Errorf("expected zero delta, got %+v", got)
		}
	})
}

// Inverse law: apply(T) then reverse(T) restores the prior balances exactly,
// for every type and account combination.
func TestInverseLaw(t *testing.T) {
	shapes := []models.Transaction{
		txn(models.TransactionTypeIncome, 12345, models.AccountBank, nil),
		txn(models.TransactionTypeIncome, 12345, models.AccountCash, nil),
		txn(models.TransactionTypeExpense, 999, models.AccountBank, nil),
		txn(models.TransactionTypeExpense, 999, models.AccountCash, nil),
		txn(models.TransactionTypeExpense, 999, models.AccountSavings, nil),
		txn(models.TransactionTypeTransfer, 50000, models.AccountBank, target(models.AccountCash)),
		txn(models.TransactionTypeTransfer, 50000, models.AccountCash, target(models.AccountBank)),
		txn(models.TransactionTypeSave, 777, models.AccountBank, nil),
		txn(models.TransactionTypeSave, 777, models.AccountCash, nil),
	}

	start := models.Balances{Bank: 100000, Cash: 40000, Savings: 25000}
	for _, shape := range shapes {
		after := ApplyTransaction(shape).ApplyTo(start)
		restored := Reverse(shape).ApplyTo(after)
		if restored != start {
			t.Errorf("%s/%s: apply+reverse = %+v, want %+v", shape.Type, shape.Account, restored, start)
		}
	}
}

// Replay equivalence: replaying the surviving transactions from zero yields
// the same balances as the running total kept across adds and deletes.
func TestReplayEquivalence(t *testing.T) {
	sequence := []models.Transaction{
		txn(models.TransactionTypeIncome, 100000, models.AccountBank, nil),
		txn(models.TransactionTypeIncome, 30000, models.AccountCash, nil),
		txn(models.TransactionTypeSave, 20000, models.AccountBank, nil),
		txn(models.TransactionTypeExpense, 5000, models.AccountCash, nil),
		txn(models.TransactionTypeTransfer, 10000, models.AccountBank, target(models.AccountCash)),
		txn(models.TransactionTypeExpense, 1500, models.AccountSavings, nil),
	}
	for i := range sequence {
		sequence[i].ID = string(rune('a' + i))
	}

	var running models.Balances
	live := make([]models.Transaction, 0, len(sequence))
	for _, txn := range sequence {
		running = ApplyTransaction(txn).ApplyTo(running)
		live = append(live, txn)
	}

	// Delete two of them via reverse.
	for _, idx := range []int{3, 0} {
		running = Reverse(live[idx]).ApplyTo(running)
		live = append(live[:idx], live[idx+1:]...)
	}

	if got := Replay(live); got != running {
		t.Errorf("Replay() = %+v, want running total %+v", got, running)
	}
}

// Transfer symmetry: moving money from bank to cash and deleting the
// transaction restores the original split.
func TestTransferSymmetry(t *testing.T) {
	start := models.Balances{Bank: 100000, Cash: 0}
	transfer := txn(models.TransactionTypeTransfer, 20000, models.AccountBank, target(models.AccountCash))

	after := ApplyTransaction(transfer).ApplyTo(start)
	if after.Bank != 80000 || after.Cash != 20000 {
		t.Fatalf("after transfer: %+v, want bank=80000 cash=20000", after)
	}

	restored := Reverse(transfer).ApplyTo(after)
	if restored != start {
		t.Errorf("after delete: %+v, want %+v", restored, start)
	}
}

package testutil

import (
	"fmt"
	"time"

	"duitku/internal/models"
	"duitku/internal/uuid"
)

// NewTransaction builds a valid transaction of the given shape.
func NewTransaction(t models.TransactionType, amount int64, account models.AccountType) models.Transaction {
	txn := models.Transaction{
		ID:          uuid.New(),
		Type:        t,
		Amount:      amount,
		Description: fmt.Sprintf("test transaction %d", nextID()),
		Account:     account,
		Date:        time.Now().UTC(),
	}
	switch t {
	case models.TransactionTypeTransfer:
		if opposite, ok := account.Opposite(); ok {
			txn.TargetAccount = &opposite
		}
	case models.TransactionTypeExpense:
		category := models.CategoryLainnya
		txn.Category = &category
	}
	return txn
}

// NewGoal builds a savings goal with the given target.
func NewGoal(target int64) models.SavingsGoal {
	return models.SavingsGoal{
		ID:           uuid.New(),
		Name:         fmt.Sprintf("test goal %d", nextID()),
		TargetAmount: target,
		CreatedAt:    time.Now().UTC(),
	}
}

// SeededState builds a state with the given balances and records.
func SeededState(balances models.Balances, txns []models.Transaction, goals []models.SavingsGoal) *models.FullState {
	state := models.DefaultState()
	state.Balances = balances
	if txns != nil {
		state.Transactions = txns
	}
	if goals != nil {
		state.Goals = goals
	}
	return state
}

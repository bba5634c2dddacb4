// Package storage provides the persistence port behind the orchestrator and
// its two drivers: a local SQLite store that saves the full aggregate state
// atomically, and a remote Postgres store that syncs fine-grained mutations.
// Both drivers sit behind the same interface so the balance-mutation rules
// live in exactly one place, the ledger, and can never drift per backend.
package storage

import (
	"context"

	"duitku/internal/models"
)

// Store is the persistence capability consumed by the orchestrator. Every
// mutating call receives the full post-mutation state snapshot plus the
// specific change; the local driver persists the snapshot wholesale in one
// database transaction, while the remote driver uses only the fine-grained
// arguments and commits them as separate, independently fallible calls.
type Store interface {
	// Load restores the persisted state, called once at session start.
	// A fresh backend yields the default empty state.
	Load(ctx context.Context) (*models.FullState, error)

	// SaveTransaction persists a newly added transaction together with the
	// updated balances. On the remote driver a failure of the second step
	// is reported as ErrBalanceSync: the transaction row exists but the
	// balances are stale.
	SaveTransaction(ctx context.Context, state *models.FullState, txn *models.Transaction) error

	// DeleteTransaction persists a transaction removal together with the
	// updated balances.
	DeleteTransaction(ctx context.Context, state *models.FullState, id string) error

	SaveGoal(ctx context.Context, state *models.FullState, goal *models.SavingsGoal) error
	DeleteGoal(ctx context.Context, state *models.FullState, id string) error
	UpdateGoalProgress(ctx context.Context, state *models.FullState, id string, currentAmount int64) error

	// SaveSettings persists the budget settings (and, on the remote driver,
	// the balances row they share).
	SaveSettings(ctx context.Context, state *models.FullState) error

	// Reset wipes all persisted data.
	Reset(ctx context.Context) error

	Close() error
}

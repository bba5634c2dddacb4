// Package testutil provides test helpers: an in-memory local store, a stub
// persistence store with per-call failure injection, fixtures, and
// assertions.
package testutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	apperrors "duitku/internal/errors"
	"duitku/internal/models"
	"duitku/internal/storage"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// SetupLocalStore creates a local store over a private in-memory SQLite
// database.
func SetupLocalStore(t *testing.T) *storage.LocalStore {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", nextID())
	store, err := storage.NewLocal(dsn)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close test store: %v", err)
		}
	})
	return store
}

// Step names one mutating call on the StubStore for failure injection.
type Step string

const (
	StepSaveTransaction   Step = "save_transaction"
	StepDeleteTransaction Step = "delete_transaction"
	StepSaveGoal          Step = "save_goal"
	StepDeleteGoal        Step = "delete_goal"
	StepGoalProgress      Step = "goal_progress"
	StepSaveSettings      Step = "save_settings"
	StepReset             Step = "reset"
)

// StubStore implements storage.Store entirely in memory and can be told to
// fail specific calls with specific errors. It stands in for the remote
// store in tests that probe the two-step commit failure window.
type StubStore struct {
	// Initial is returned by Load.
	Initial *models.FullState
	// Fail maps a step to the error it should return.
	Fail map[Step]error
	// Calls records every mutating call in order.
	Calls []Step
}

// NewStubStore creates a stub that loads an empty default state.
func NewStubStore() *StubStore {
	return &StubStore{
		Initial: models.DefaultState(),
		Fail:    map[Step]error{},
	}
}

// FailWith arranges for the given step to return err.
func (s *StubStore) FailWith(step Step, err error) *StubStore {
	s.Fail[step] = err
	return s
}

func (s *StubStore) record(step Step) error {
	s.Calls = append(s.Calls, step)
	return s.Fail[step]
}

// Load implements storage.Store.
func (s *StubStore) Load(context.Context) (*models.FullState, error) {
	if s.Initial == nil {
		return models.DefaultState(), nil
	}
	return s.Initial.Clone(), nil
}

// SaveTransaction implements storage.Store.
func (s *StubStore) SaveTransaction(_ context.Context, _ *models.FullState, _ *models.Transaction) error {
	return s.record(StepSaveTransaction)
}

// DeleteTransaction implements storage.Store.
func (s *StubStore) DeleteTransaction(_ context.Context, _ *models.FullState, _ string) error {
	return s.record(StepDeleteTransaction)
}

// SaveGoal implements storage.Store.
func (s *StubStore) SaveGoal(_ context.Context, _ *models.FullState, _ *models.SavingsGoal) error {
	return s.record(StepSaveGoal)
}

// DeleteGoal implements storage.Store.
func (s *StubStore) DeleteGoal(_ context.Context, _ *models.FullState, _ string) error {
	return s.record(StepDeleteGoal)
}

// UpdateGoalProgress implements storage.Store.
func (s *StubStore) UpdateGoalProgress(_ context.Context, _ *models.FullState, _ string, _ int64) error {
	return s.record(StepGoalProgress)
}

// SaveSettings implements storage.Store.
func (s *StubStore) SaveSettings(_ context.Context, _ *models.FullState) error {
	return s.record(StepSaveSettings)
}

// Reset implements storage.Store.
func (s *StubStore) Reset(context.Context) error {
	return s.record(StepReset)
}

// Close implements storage.Store.
func (s *StubStore) Close() error { return nil }

// PersistenceError builds a persistence failure with the given sentinel for
// injection into a StubStore.
func PersistenceError(sentinel *apperrors.AppError) error {
	return apperrors.Wrap(sentinel, fmt.Errorf("injected failure"))
}

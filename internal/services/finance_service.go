package services

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"duitku/internal/budget"
	apperrors "duitku/internal/errors"
	"duitku/internal/ledger"
	"duitku/internal/logger"
	"duitku/internal/metrics"
	"duitku/internal/models"
	"duitku/internal/pagination"
	"duitku/internal/period"
	"duitku/internal/stats"
	"duitku/internal/storage"
	"duitku/internal/store"
	"duitku/internal/uuid"
)

// financeService is the balance-mutation orchestrator. It owns the in-memory
// aggregate state explicitly (no ambient singletons) and serializes mutating
// calls behind a write lock: each mutation reads the current snapshot,
// computes deltas, and publishes a new immutable snapshot, so two
// near-simultaneous adds can never both read the same stale balances.
// Readers take the current snapshot under a read lock; published states are
// never mutated afterwards.
type financeService struct {
	mu      sync.RWMutex
	state   *models.FullState
	backend storage.Store
}

// NewFinanceService loads the persisted state (once, at session start) and
// returns the orchestrator over it.
func NewFinanceService(ctx context.Context, backend storage.Store) (FinanceServicer, error) {
	state, err := backend.Load(ctx)
	if err != nil {
		return nil, err
	}
	logger.Get().Infow("state loaded",
		"transactions", len(state.Transactions),
		"goals", len(state.Goals),
	)
	return &financeService{state: state, backend: backend}, nil
}

// snapshot returns the current published state. The state is immutable, so
// holding it outside the lock is safe.
func (s *financeService) snapshot() *models.FullState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// AddTransaction validates the intent, applies the budget and sufficiency
// gates, computes the balance deltas, and commits the new snapshot plus the
// appended transaction as one logical unit. On persistence failure the
// previous in-memory state is kept, so memory never runs ahead of a failed
// local save; the remote store's step errors pass through untouched.
func (s *financeService) AddTransaction(ctx context.Context, input AddTransactionInput) (*AddTransactionResult, error) {
	if err := validateTransactionInput(&input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.state

	// Hard gate: the source account must cover the amount. Never bypassable.
	if input.Type != models.TransactionTypeIncome {
		if current.Balances.Of(input.Account) < input.Amount {
			return nil, apperrors.ErrInsufficientBalance
		}
	}

	now := time.Now().UTC()
	var evaluation *budget.Evaluation
	if input.Type == models.TransactionTypeExpense && input.Account == models.AccountCash {
		todayTotal := budget.CashSpentOn(current.Transactions, now)
		ev := budget.Evaluate(input.Amount, todayTotal, current.Settings.DailyCashLimit)
		evaluation = &ev
		metrics.BudgetEvaluations.WithLabelValues(string(ev.Level)).Inc()

		// A soft violation is not a rejection: the caller may proceed,
		// but only with explicit confirmation.
		if ev.Level == budget.LevelExceeded && !input.ConfirmOverBudget {
			return &AddTransactionResult{Budget: evaluation}, nil
		}
	}

	txn := models.Transaction{
		ID:            uuid.New(),
		Type:          input.Type,
		Amount:        input.Amount,
		Description:   input.Description,
		Account:       input.Account,
		TargetAccount: input.TargetAccount,
		Category:      input.Category,
		Date:          now,
	}

	next := current.Clone()
	next.Balances = ledger.ApplyTransaction(txn).ApplyTo(current.Balances)
	next.Transactions = store.New(current.Transactions).Insert(txn).List()

	if err := s.backend.SaveTransaction(ctx, next, &txn); err != nil {
		metrics.PersistenceFailures.WithLabelValues("save_transaction").Inc()
		return nil, err
	}

	s.state = next
	metrics.TransactionsAdded.WithLabelValues(string(txn.Type)).Inc()
	logger.Get().Infow("transaction added",
		"id", txn.ID,
		"type", txn.Type,
		"account", txn.Account,
		"amount", txn.Amount,
	)
	return &AddTransactionResult{Transaction: &txn, Budget: evaluation}, nil
}

// DeleteTransaction reverses a stored transaction's effect and removes it.
// Deleting an unknown id reports TRANSACTION_NOT_FOUND, which callers treat
// as a benign no-op; balances are untouched.
func (s *financeService) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.state

	nextStore, txn, found := store.New(current.Transactions).Remove(id)
	if !found {
		return apperrors.ErrTransactionNotFound
	}

	next := current.Clone()
	next.Balances = ledger.Reverse(txn).ApplyTo(current.Balances)
	next.Transactions = nextStore.List()

	if err := s.backend.DeleteTransaction(ctx, next, id); err != nil {
		metrics.PersistenceFailures.WithLabelValues("delete_transaction").Inc()
		return err
	}

	s.state = next
	metrics.TransactionsDeleted.Inc()
	logger.Get().Infow("transaction deleted", "id", id, "type", txn.Type, "amount", txn.Amount)
	return nil
}

// GetTransaction returns a stored transaction by id.
func (s *financeService) GetTransaction(id string) (*models.Transaction, error) {
	txn, found := store.New(s.snapshot().Transactions).Find(id)
	if !found {
		return nil, apperrors.ErrTransactionNotFound
	}
	return &txn, nil
}

// ListTransactions returns one page of the ordered sequence, newest first.
func (s *financeService) ListTransactions(page pagination.PageRequest) pagination.PageResponse[models.Transaction] {
	return pagination.Paginate(s.snapshot().Transactions, page)
}

// Balances returns the current three balances.
func (s *financeService) Balances() models.Balances {
	return s.snapshot().Balances
}

// EvaluateBudget classifies a prospective cash expense against today's cash
// spending. Pure read; nothing is mutated.
func (s *financeService) EvaluateBudget(amount int64, at time.Time) budget.Evaluation {
	state := s.snapshot()
	todayTotal := budget.CashSpentOn(state.Transactions, at)
	return budget.Evaluate(amount, todayTotal, state.Settings.DailyCashLimit)
}

// Statistics aggregates the transaction list for one window.
func (s *financeService) Statistics(w period.Window, now time.Time) stats.WindowSummary {
	return stats.Summarize(s.snapshot().Transactions, w, now)
}

// AddGoal creates a savings goal.
func (s *financeService) AddGoal(ctx context.Context, name string, targetAmount int64, deadline *time.Time) (*models.SavingsGoal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goal := models.SavingsGoal{
		ID:           uuid.New(),
		Name:         name,
		TargetAmount: targetAmount,
		Deadline:     deadline,
		CreatedAt:    time.Now().UTC(),
	}

	next := s.state.Clone()
	next.Goals = append([]models.SavingsGoal{goal}, next.Goals...)

	if err := s.backend.SaveGoal(ctx, next, &goal); err != nil {
		metrics.PersistenceFailures.WithLabelValues("save_goal").Inc()
		return nil, err
	}

	s.state = next
	logger.Get().Infow("savings goal added", "id", goal.ID, "name", goal.Name, "target", goal.TargetAmount)
	return &goal, nil
}

// DeleteGoal removes a savings goal. Unknown ids report GOAL_NOT_FOUND.
func (s *financeService) DeleteGoal(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, goal := range s.state.Goals {
		if goal.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrGoalNotFound
	}

	next := s.state.Clone()
	next.Goals = append(next.Goals[:idx], next.Goals[idx+1:]...)

	if err := s.backend.DeleteGoal(ctx, next, id); err != nil {
		metrics.PersistenceFailures.WithLabelValues("delete_goal").Inc()
		return err
	}

	s.state = next
	logger.Get().Infow("savings goal deleted", "id", id)
	return nil
}

// SyncGoalProgress refreshes one goal's cached currentAmount from the pooled
// savings balance. The cache is informational; displayed progress always
// derives from the pool.
func (s *financeService) SyncGoalProgress(ctx context.Context, id string) (*GoalView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, goal := range s.state.Goals {
		if goal.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.ErrGoalNotFound
	}

	next := s.state.Clone()
	pooled := next.Balances.Savings
	next.Goals[idx].CurrentAmount = next.Goals[idx].Progress(pooled)

	if err := s.backend.UpdateGoalProgress(ctx, next, id, next.Goals[idx].CurrentAmount); err != nil {
		metrics.PersistenceFailures.WithLabelValues("goal_progress").Inc()
		return nil, err
	}

	s.state = next
	view := goalView(next.Goals[idx], pooled)
	return &view, nil
}

// ListGoals returns all goals with progress read from the shared pooled
// savings balance. Goals are not individually funded; they overlap on the
// same pool.
func (s *financeService) ListGoals() []GoalView {
	state := s.snapshot()
	views := make([]GoalView, len(state.Goals))
	for i, goal := range state.Goals {
		views[i] = goalView(goal, state.Balances.Savings)
	}
	return views
}

// Settings returns the current budget settings.
func (s *financeService) Settings() models.BudgetSettings {
	return s.snapshot().Settings
}

// UpdateSettings replaces the budget settings wholesale. A non-positive
// daily limit is a configuration error, rejected before persisting.
func (s *financeService) UpdateSettings(ctx context.Context, settings models.BudgetSettings) (models.BudgetSettings, error) {
	if settings.DailyCashLimit <= 0 {
		return models.BudgetSettings{}, apperrors.ErrInvalidSettings
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	next.Settings = settings

	if err := s.backend.SaveSettings(ctx, next); err != nil {
		metrics.PersistenceFailures.WithLabelValues("save_settings").Inc()
		return models.BudgetSettings{}, err
	}

	s.state = next
	logger.Get().Infow("budget settings updated",
		"daily_cash_limit", settings.DailyCashLimit,
		"notifications", settings.EnableNotifications,
	)
	return settings, nil
}

// ResetAll clears transactions, goals, and balances, and restores default
// settings. Irreversible; confirmation is the caller's concern.
func (s *financeService) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Reset(ctx); err != nil {
		metrics.PersistenceFailures.WithLabelValues("reset").Inc()
		return err
	}

	s.state = models.DefaultState()
	logger.Get().Warnw("all data reset")
	return nil
}

func goalView(goal models.SavingsGoal, pooled int64) GoalView {
	return GoalView{
		SavingsGoal:     goal,
		Progress:        goal.Progress(pooled),
		ProgressPercent: goal.ProgressPercent(pooled),
	}
}

// validateTransactionInput enforces the intent-layer rules before anything
// reaches the ledger. Violations never touch state or persistence.
func validateTransactionInput(input *AddTransactionInput) error {
	if !input.Type.IsValid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unsupported transaction type")
	}
	if input.Amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	input.Description = strings.TrimSpace(input.Description)
	if input.Description == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if utf8.RuneCountInString(input.Description) > models.MaxDescriptionLen {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "description exceeds 100 characters")
	}

	if !input.Account.IsValid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unsupported account")
	}

	switch input.Type {
	case models.TransactionTypeIncome, models.TransactionTypeSave:
		// No income path into savings; save already targets savings.
		if input.Account == models.AccountSavings {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "account must be bank or cash")
		}
		input.TargetAccount = nil
		input.Category = nil
	case models.TransactionTypeTransfer:
		opposite, ok := input.Account.Opposite()
		if !ok {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "transfers run between bank and cash")
		}
		if input.TargetAccount == nil {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "transfer target account is required")
		}
		if *input.TargetAccount != opposite {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "transfer target must be the opposite of the source account")
		}
		input.Category = nil
	case models.TransactionTypeExpense:
		input.TargetAccount = nil
		if input.Category == nil {
			category := models.CategoryLainnya
			input.Category = &category
		} else if !input.Category.IsValid() {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown expense category")
		}
	}
	return nil
}

package services

import (
	"context"
	"time"

	"duitku/internal/budget"
	"duitku/internal/models"
	"duitku/internal/pagination"
	"duitku/internal/period"
	"duitku/internal/stats"
)

// AddTransactionInput carries a validated-shape transaction intent.
type AddTransactionInput struct {
	Type          models.TransactionType
	Amount        int64
	Description   string
	Account       models.AccountType
	TargetAccount *models.AccountType
	Category      *models.Category

	// ConfirmOverBudget acknowledges a prior over-the-limit evaluation.
	// Without it, a cash expense that projects over the daily limit is
	// answered with the evaluation instead of being committed.
	ConfirmOverBudget bool
}

// AddTransactionResult is the outcome of an add. When Transaction is nil the
// add was withheld pending over-budget confirmation and Budget carries the
// evaluation; otherwise Budget is informational (warning or ok) for cash
// expenses and nil for everything else.
type AddTransactionResult struct {
	Transaction *models.Transaction
	Budget      *budget.Evaluation
}

// GoalView is a savings goal together with its displayed progress against
// the pooled savings balance.
type GoalView struct {
	models.SavingsGoal
	Progress        int64   `json:"progress"`
	ProgressPercent float64 `json:"progress_percent"`
}

// FinanceServicer is the single orchestrator surface consumed by handlers.
type FinanceServicer interface {
	AddTransaction(ctx context.Context, input AddTransactionInput) (*AddTransactionResult, error)
	DeleteTransaction(ctx context.Context, id string) error
	GetTransaction(id string) (*models.Transaction, error)
	ListTransactions(page pagination.PageRequest) pagination.PageResponse[models.Transaction]

	Balances() models.Balances
	EvaluateBudget(amount int64, at time.Time) budget.Evaluation
	Statistics(w period.Window, now time.Time) stats.WindowSummary

	AddGoal(ctx context.Context, name string, targetAmount int64, deadline *time.Time) (*models.SavingsGoal, error)
	DeleteGoal(ctx context.Context, id string) error
	SyncGoalProgress(ctx context.Context, id string) (*GoalView, error)
	ListGoals() []GoalView

	Settings() models.BudgetSettings
	UpdateSettings(ctx context.Context, settings models.BudgetSettings) (models.BudgetSettings, error)

	ResetAll(ctx context.Context) error
}

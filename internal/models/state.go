package models

// DefaultDailyCashLimit is the daily cash-spending budget applied until the
// user configures their own.
const DefaultDailyCashLimit = 30000

// BudgetSettings is the singleton budget configuration. It is replaced
// wholesale on update, never patched in place.
type BudgetSettings struct {
	DailyCashLimit      int64 `json:"daily_cash_limit"`
	EnableNotifications bool  `json:"enable_notifications"`
}

// DefaultSettings returns the settings a fresh session starts with.
func DefaultSettings() BudgetSettings {
	return BudgetSettings{
		DailyCashLimit:      DefaultDailyCashLimit,
		EnableNotifications: true,
	}
}

// Balances holds the three running balances. They are derived state: each
// equals the sum of that balance's deltas over every stored transaction.
type Balances struct {
	Bank    int64 `json:"bank"`
	Cash    int64 `json:"cash"`
	Savings int64 `json:"savings"`
}

// Of returns the balance of a single account.
func (b Balances) Of(account AccountType) int64 {
	switch account {
	case AccountBank:
		return b.Bank
	case AccountCash:
		return b.Cash
	case AccountSavings:
		return b.Savings
	}
	return 0
}

// FullState is the whole persisted aggregate: balances, the ordered
// transaction list (newest first), savings goals, and budget settings.
// Published states are treated as immutable; mutations build a new state
// via Clone and swap it in.
type FullState struct {
	Balances     Balances       `json:"balances"`
	Transactions []Transaction  `json:"transactions"`
	Goals        []SavingsGoal  `json:"goals"`
	Settings     BudgetSettings `json:"settings"`
}

// DefaultState returns an empty state with default settings.
func DefaultState() *FullState {
	return &FullState{
		Transactions: []Transaction{},
		Goals:        []SavingsGoal{},
		Settings:     DefaultSettings(),
	}
}

// Clone returns a deep copy safe to mutate while readers hold the original.
func (s *FullState) Clone() *FullState {
	next := &FullState{
		Balances:     s.Balances,
		Transactions: make([]Transaction, len(s.Transactions)),
		Goals:        make([]SavingsGoal, len(s.Goals)),
		Settings:     s.Settings,
	}
	copy(next.Transactions, s.Transactions)
	copy(next.Goals, s.Goals)
	return next
}

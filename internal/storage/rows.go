package storage

import (
	"time"

	"duitku/internal/models"
)

// ownerRowID keys the singleton balances/settings row. The service is
// single-owner; the row is created on first save.
const ownerRowID = 1

// userData is the singleton row holding balances and budget settings,
// matching the Supabase users_data table the remote driver targets.
type userData struct {
	ID                  int       `gorm:"primaryKey;column:id"`
	BankBalance         int64     `gorm:"column:bank_balance;not null;default:0"`
	CashBalance         int64     `gorm:"column:cash_balance;not null;default:0"`
	SavingsBalance      int64     `gorm:"column:savings_balance;not null;default:0"`
	DailyCashLimit      int64     `gorm:"column:daily_cash_limit;not null"`
	EnableNotifications bool      `gorm:"column:enable_notifications;not null"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (userData) TableName() string { return "users_data" }

func newUserData(state *models.FullState) userData {
	return userData{
		ID:                  ownerRowID,
		BankBalance:         state.Balances.Bank,
		CashBalance:         state.Balances.Cash,
		SavingsBalance:      state.Balances.Savings,
		DailyCashLimit:      state.Settings.DailyCashLimit,
		EnableNotifications: state.Settings.EnableNotifications,
		UpdatedAt:           time.Now().UTC(),
	}
}

func (u userData) applyTo(state *models.FullState) {
	state.Balances = models.Balances{
		Bank:    u.BankBalance,
		Cash:    u.CashBalance,
		Savings: u.SavingsBalance,
	}
	state.Settings = models.BudgetSettings{
		DailyCashLimit:      u.DailyCashLimit,
		EnableNotifications: u.EnableNotifications,
	}
}

package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
	TransactionTypeSave     TransactionType = "save"
)

// IsValid reports whether t is one of the supported transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer, TransactionTypeSave:
		return true
	}
	return false
}

// AccountType represents one of the three tracked balances
type AccountType string

const (
	AccountBank    AccountType = "bank"
	AccountCash    AccountType = "cash"
	AccountSavings AccountType = "savings"
)

// IsValid reports whether a is one of the supported accounts.
func (a AccountType) IsValid() bool {
	switch a {
	case AccountBank, AccountCash, AccountSavings:
		return true
	}
	return false
}

// Opposite returns the transfer counter-account among {bank, cash}.
// Savings is never a transfer endpoint.
func (a AccountType) Opposite() (AccountType, bool) {
	switch a {
	case AccountBank:
		return AccountCash, true
	case AccountCash:
		return AccountBank, true
	}
	return "", false
}

// Category is one of the fixed expense tags.
type Category string

const (
	CategoryMakan              Category = "makan"
	CategoryLaundry            Category = "laundry"
	CategoryKebutuhanSehari    Category = "kebutuhan-sehari-hari"
	CategoryRumah              Category = "rumah"
	CategoryArisan             Category = "arisan"
	CategoryOrangTua           Category = "orang-tua"
	CategoryKebutuhanMendadak  Category = "kebutuhan-mendadak"
	CategoryJajan              Category = "jajan"
	CategorySelfReward         Category = "self-reward"
	CategoryLainnya            Category = "lainnya"
)

// Categories lists every valid expense category.
var Categories = []Category{
	CategoryMakan,
	CategoryLaundry,
	CategoryKebutuhanSehari,
	CategoryRumah,
	CategoryArisan,
	CategoryOrangTua,
	CategoryKebutuhanMendadak,
	CategoryJajan,
	CategorySelfReward,
	CategoryLainnya,
}

// IsValid reports whether c is one of the fixed expense categories.
func (c Category) IsValid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// MaxDescriptionLen is the maximum allowed transaction description length.
const MaxDescriptionLen = 100

// Transaction represents a single immutable ledger entry. Amounts are whole
// rupiah stored as int64; the ledger never does floating-point arithmetic.
type Transaction struct {
	ID            string          `gorm:"type:uuid;primaryKey" json:"id"`
	Type          TransactionType `gorm:"not null" json:"type"`
	Amount        int64           `gorm:"type:bigint;not null" json:"amount"`
	Description   string          `gorm:"not null" json:"description"`
	Account       AccountType     `gorm:"not null" json:"account"`
	TargetAccount *AccountType    `json:"target_account,omitempty"`
	Category      *Category       `json:"category,omitempty"`
	Date          time.Time       `gorm:"not null" json:"date"`
}

package models

import "time"

// SavingsGoal represents a savings target. CurrentAmount is an informational
// snapshot refreshed by an explicit sync; the pooled savings balance is the
// authoritative source for displayed progress.
type SavingsGoal struct {
	ID            string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string     `gorm:"not null" json:"name"`
	TargetAmount  int64      `gorm:"type:bigint;not null" json:"target_amount"`
	CurrentAmount int64      `gorm:"type:bigint;not null;default:0" json:"current_amount"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
}

// Progress returns the displayed progress against the pooled savings balance,
// capped at the goal's target. All goals read the same pool; nothing is
// subtracted between goals.
func (g SavingsGoal) Progress(pooledSavings int64) int64 {
	if pooledSavings < 0 {
		return 0
	}
	if pooledSavings > g.TargetAmount {
		return g.TargetAmount
	}
	return pooledSavings
}

// ProgressPercent returns Progress as a percentage of the target.
func (g SavingsGoal) ProgressPercent(pooledSavings int64) float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return float64(g.Progress(pooledSavings)) / float64(g.TargetAmount) * 100
}

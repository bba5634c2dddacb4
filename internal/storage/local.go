package storage

import (
	"context"
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	apperrors "duitku/internal/errors"
	"duitku/internal/models"
)

// LocalStore persists the full aggregate state to a SQLite file. Every
// mutation rewrites the whole snapshot inside one database transaction, so a
// failed save leaves the file untouched and the orchestrator can keep its
// previous in-memory state: memory and disk never diverge silently.
type LocalStore struct {
	db *gorm.DB
}

// NewLocal opens (or creates) the SQLite database at path and migrates the
// schema. Use ":memory:" for tests.
func NewLocal(path string) (*LocalStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}

	if err := db.AutoMigrate(&models.Transaction{}, &models.SavingsGoal{}, &userData{}); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}

	return &LocalStore{db: db}, nil
}

// Load restores the persisted state. A fresh database yields the default
// empty state.
func (s *LocalStore) Load(ctx context.Context) (*models.FullState, error) {
	db := s.db.WithContext(ctx)
	state := models.DefaultState()

	var owner userData
	err := db.First(&owner, ownerRowID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return state, nil
	case err != nil:
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	owner.applyTo(state)

	if err := db.Order("date DESC").Find(&state.Transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	if err := db.Order("created_at DESC").Find(&state.Goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return state, nil
}

// SaveTransaction persists the post-mutation snapshot.
func (s *LocalStore) SaveTransaction(ctx context.Context, state *models.FullState, _ *models.Transaction) error {
	return s.saveAll(ctx, state)
}

// DeleteTransaction persists the post-mutation snapshot.
func (s *LocalStore) DeleteTransaction(ctx context.Context, state *models.FullState, _ string) error {
	return s.saveAll(ctx, state)
}

// SaveGoal persists the post-mutation snapshot.
func (s *LocalStore) SaveGoal(ctx context.Context, state *models.FullState, _ *models.SavingsGoal) error {
	return s.saveAll(ctx, state)
}

// DeleteGoal persists the post-mutation snapshot.
func (s *LocalStore) DeleteGoal(ctx context.Context, state *models.FullState, _ string) error {
	return s.saveAll(ctx, state)
}

// UpdateGoalProgress persists the post-mutation snapshot.
func (s *LocalStore) UpdateGoalProgress(ctx context.Context, state *models.FullState, _ string, _ int64) error {
	return s.saveAll(ctx, state)
}

// SaveSettings persists the post-mutation snapshot.
func (s *LocalStore) SaveSettings(ctx context.Context, state *models.FullState) error {
	return s.saveAll(ctx, state)
}

// Reset wipes all persisted data.
func (s *LocalStore) Reset(ctx context.Context) error {
	return s.saveAll(ctx, models.DefaultState())
}

// Close closes the underlying database.
func (s *LocalStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// saveAll rewrites the whole snapshot in one database transaction. Expected
// volumes are small, so the coarse write stays cheap, and it is what makes
// the local strategy all-or-nothing.
func (s *LocalStore) saveAll(ctx context.Context, state *models.FullState) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := wipe.Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		if err := wipe.Delete(&models.SavingsGoal{}).Error; err != nil {
			return err
		}
		if err := wipe.Delete(&userData{}).Error; err != nil {
			return err
		}

		if len(state.Transactions) > 0 {
			if err := tx.Create(state.Transactions).Error; err != nil {
				return err
			}
		}
		if len(state.Goals) > 0 {
			if err := tx.Create(state.Goals).Error; err != nil {
				return err
			}
		}
		owner := newUserData(state)
		return tx.Create(&owner).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return nil
}

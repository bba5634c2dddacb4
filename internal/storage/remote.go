package storage

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "duitku/internal/errors"
	"duitku/internal/logger"
	"duitku/internal/models"
)

// remoteTimeout bounds every individual round trip to the remote database.
const remoteTimeout = 10 * time.Second

// RemoteStore syncs mutations to a Postgres database with Supabase-shaped
// tables. A transaction commit is two separate calls, insert the record then
// upsert the balances, with no distributed transaction between them: a
// failure after the first call leaves the remote store inconsistent until a
// retry, and the returned error says which step failed. All calls go through
// a circuit breaker so a flapping network fails fast instead of hanging the
// orchestrator.
type RemoteStore struct {
	db *gorm.DB
	cb *gobreaker.CircuitBreaker
}

// NewRemote connects to the remote database. The schema is managed by
// cmd/migrate, not created here.
func NewRemote(dsn string) (*RemoteStore, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // Required for Supabase Supavisor; harmless for direct connections
	}), &gorm.Config{})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(time.Hour)

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "remote-store",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Get().Warnw("circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})

	return &RemoteStore{db: db, cb: cb}, nil
}

// call runs one remote round trip through the circuit breaker with the
// standard request timeout applied.
func (s *RemoteStore) call(ctx context.Context, op func(db *gorm.DB) error) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(ctx, remoteTimeout)
		defer cancel()
		return nil, op(s.db.WithContext(callCtx))
	})
	return err
}

// Load restores the remote state. The three result sets are independent, so
// they are fetched concurrently.
func (s *RemoteStore) Load(ctx context.Context) (*models.FullState, error) {
	state := models.DefaultState()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.call(gctx, func(db *gorm.DB) error {
			var owner userData
			err := db.First(&owner, ownerRowID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // first session, the row appears on first save
			}
			if err != nil {
				return err
			}
			owner.applyTo(state)
			return nil
		})
	})
	g.Go(func() error {
		return s.call(gctx, func(db *gorm.DB) error {
			return db.Order("date DESC").Find(&state.Transactions).Error
		})
	})
	g.Go(func() error {
		return s.call(gctx, func(db *gorm.DB) error {
			return db.Order("created_at DESC").Find(&state.Goals).Error
		})
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return state, nil
}

// SaveTransaction inserts the transaction record, then upserts the balances.
// The two steps are separate network calls; the error code tells the caller
// which one failed so it can retry or reconcile.
func (s *RemoteStore) SaveTransaction(ctx context.Context, state *models.FullState, txn *models.Transaction) error {
	if err := s.call(ctx, func(db *gorm.DB) error {
		return db.Create(txn).Error
	}); err != nil {
		return apperrors.Wrap(apperrors.ErrTransactionSync, err)
	}

	if err := s.upsertUserData(ctx, state); err != nil {
		return apperrors.Wrap(apperrors.ErrBalanceSync, err)
	}
	return nil
}

// DeleteTransaction removes the transaction record, then upserts the
// balances. Same two-step semantics as SaveTransaction.
func (s *RemoteStore) DeleteTransaction(ctx context.Context, state *models.FullState, id string) error {
	if err := s.call(ctx, func(db *gorm.DB) error {
		return db.Delete(&models.Transaction{}, "id = ?", id).Error
	}); err != nil {
		return apperrors.Wrap(apperrors.ErrTransactionSync, err)
	}

	if err := s.upsertUserData(ctx, state); err != nil {
		return apperrors.Wrap(apperrors.ErrBalanceSync, err)
	}
	return nil
}

// SaveGoal inserts a savings goal row. Goals never touch balances, so this
// is a single call.
func (s *RemoteStore) SaveGoal(ctx context.Context, _ *models.FullState, goal *models.SavingsGoal) error {
	if err := s.call(ctx, func(db *gorm.DB) error {
		return db.Create(goal).Error
	}); err != nil {
		return apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return nil
}

// DeleteGoal removes a savings goal row.
func (s *RemoteStore) DeleteGoal(ctx context.Context, _ *models.FullState, id string) error {
	if err := s.call(ctx, func(db *gorm.DB) error {
		return db.Delete(&models.SavingsGoal{}, "id = ?", id).Error
	}); err != nil {
		return apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return nil
}

// UpdateGoalProgress refreshes the cached current_amount of one goal.
func (s *RemoteStore) UpdateGoalProgress(ctx context.Context, _ *models.FullState, id string, currentAmount int64) error {
	if err := s.call(ctx, func(db *gorm.DB) error {
		return db.Model(&models.SavingsGoal{}).Where("id = ?", id).
			Update("current_amount", currentAmount).Error
	}); err != nil {
		return apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return nil
}

// SaveSettings upserts the users_data row, which carries both settings and
// balances.
func (s *RemoteStore) SaveSettings(ctx context.Context, state *models.FullState) error {
	if err := s.upsertUserData(ctx, state); err != nil {
		return apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return nil
}

// Reset wipes all remote data. The deletes are sequential so a failure
// reports cleanly which table is left populated.
func (s *RemoteStore) Reset(ctx context.Context) error {
	steps := []func(db *gorm.DB) error{
		func(db *gorm.DB) error { return db.Delete(&models.Transaction{}, "1 = 1").Error },
		func(db *gorm.DB) error { return db.Delete(&models.SavingsGoal{}, "1 = 1").Error },
	}
	for _, step := range steps {
		if err := s.call(ctx, step); err != nil {
			return apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
		}
	}
	return s.SaveSettings(ctx, models.DefaultState())
}

// Close closes the underlying database connection.
func (s *RemoteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *RemoteStore) upsertUserData(ctx context.Context, state *models.FullState) error {
	owner := newUserData(state)
	return s.call(ctx, func(db *gorm.DB) error {
		return db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&owner).Error
	})
}

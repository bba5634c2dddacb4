package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "duitku/internal/errors"
	"duitku/internal/models"
	"duitku/internal/services"
)

func setupGoalRouter(handler *GoalHandler) *gin.Engine {
	r := gin.New()
	r.POST("/goals", handler.CreateGoal)
	r.GET("/goals", handler.GetGoals)
	r.DELETE("/goals/:id", handler.DeleteGoal)
	r.POST("/goals/:id/sync", handler.SyncGoal)
	return r
}

func TestGoalHandler_CreateGoal(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockFinanceService{
			addGoalFn: func(_ context.Context, name string, target int64, _ *time.Time) (*models.SavingsGoal, error) {
				return &models.SavingsGoal{ID: testID, Name: name, TargetAmount: target}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc))

		w := performJSON(r, http.MethodPost, "/goals", gin.H{"name": "trip", "target_amount": 200000})
		if w.Code != http.StatusCreated {
			t.Errorf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 on binding failure", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockFinanceService{}))

		for _, body := range []gin.H{
			{"name": "trip"},
			{"name": "trip", "target_amount": 0},
			{"target_amount": 1000},
		} {
			w := performJSON(r, http.MethodPost, "/goals", body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400 for %v, got %d", body, w.Code)
			}
		}
	})
}

func TestGoalHandler_GetGoals(t *testing.T) {
	svc := &mockFinanceService{
		listGoalsFn: func() []services.GoalView {
			return []services.GoalView{{
				SavingsGoal:     models.SavingsGoal{ID: testID, Name: "trip", TargetAmount: 200000},
				Progress:        150000,
				ProgressPercent: 75,
			}}
		},
	}
	r := setupGoalRouter(NewGoalHandler(svc))

	w := performJSON(r, http.MethodGet, "/goals", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Goals []services.GoalView `json:"goals"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Goals) != 1 || resp.Goals[0].Progress != 150000 {
		t.Errorf("unexpected goals payload: %s", w.Body.String())
	}
}

func TestGoalHandler_SyncGoal(t *testing.T) {
	t.Run("returns refreshed view", func(t *testing.T) {
		svc := &mockFinanceService{
			syncGoalFn: func(_ context.Context, id string) (*services.GoalView, error) {
				return &services.GoalView{
					SavingsGoal: models.SavingsGoal{ID: id, CurrentAmount: 40000},
					Progress:    40000,
				}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc))

		w := performJSON(r, http.MethodPost, "/goals/"+testID+"/sync", nil)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockFinanceService{
			syncGoalFn: func(context.Context, string) (*services.GoalView, error) {
				return nil, apperrors.ErrGoalNotFound
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc))

		w := performJSON(r, http.MethodPost, "/goals/"+testID+"/sync", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestGoalHandler_DeleteGoal(t *testing.T) {
	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockFinanceService{
			deleteGoalFn: func(context.Context, string) error {
				return apperrors.ErrGoalNotFound
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc))

		w := performJSON(r, http.MethodDelete, "/goals/"+testID, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns 400 on malformed id", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockFinanceService{}))
		w := performJSON(r, http.MethodDelete, "/goals/xyz", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

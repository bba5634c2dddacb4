package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"duitku/internal/budget"
	"duitku/internal/models"
	"duitku/internal/period"
	"duitku/internal/stats"
)

func setupFinanceRouter(handler *FinanceHandler) *gin.Engine {
	r := gin.New()
	r.GET("/balances", handler.GetBalances)
	r.GET("/budget/evaluate", handler.EvaluateBudget)
	r.GET("/statistics", handler.GetStatistics)
	r.POST("/reset", handler.Reset)
	return r
}

func TestFinanceHandler_GetBalances(t *testing.T) {
	svc := &mockFinanceService{
		balancesFn: func() models.Balances {
			return models.Balances{Bank: 350000, Cash: 80000, Savings: 50000}
		},
	}
	r := setupFinanceRouter(NewFinanceHandler(svc))

	w := performJSON(r, http.MethodGet, "/balances", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Balances models.Balances `json:"balances"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Balances.Bank != 350000 || resp.Balances.Savings != 50000 {
		t.Errorf("unexpected balances %+v", resp.Balances)
	}
}

func TestFinanceHandler_EvaluateBudget(t *testing.T) {
	t.Run("returns evaluation", func(t *testing.T) {
		svc := &mockFinanceService{
			evaluateBudgetFn: func(amount int64, _ time.Time) budget.Evaluation {
				return budget.Evaluation{Level: budget.LevelWarning, Projected: 25000, Limit: 30000}
			},
		}
		r := setupFinanceRouter(NewFinanceHandler(svc))

		w := performJSON(r, http.MethodGet, "/budget/evaluate?amount=5000", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			Evaluation budget.Evaluation `json:"evaluation"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Evaluation.Level != budget.LevelWarning {
			t.Errorf("expected warning, got %s", resp.Evaluation.Level)
		}
	})

	t.Run("returns 400 on bad amount", func(t *testing.T) {
		r := setupFinanceRouter(NewFinanceHandler(&mockFinanceService{}))
		for _, q := range []string{"", "?amount=abc", "?amount=0", "?amount=-5"} {
			w := performJSON(r, http.MethodGet, "/budget/evaluate"+q, nil)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400 for %q, got %d", q, w.Code)
			}
		}
	})
}

func TestFinanceHandler_GetStatistics(t *testing.T) {
	t.Run("passes the window through", func(t *testing.T) {
		var gotWindow period.Window
		svc := &mockFinanceService{
			statisticsFn: func(w period.Window, _ time.Time) stats.WindowSummary {
				gotWindow = w
				return stats.WindowSummary{Window: w}
			},
		}
		r := setupFinanceRouter(NewFinanceHandler(svc))

		w := performJSON(r, http.MethodGet, "/statistics?window=week", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if gotWindow != period.WindowWeek {
			t.Errorf("expected week window, got %s", gotWindow)
		}
	})

	t.Run("defaults to day", func(t *testing.T) {
		var gotWindow period.Window
		svc := &mockFinanceService{
			statisticsFn: func(w period.Window, _ time.Time) stats.WindowSummary {
				gotWindow = w
				return stats.WindowSummary{Window: w}
			},
		}
		r := setupFinanceRouter(NewFinanceHandler(svc))

		w := performJSON(r, http.MethodGet, "/statistics", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if gotWindow != period.WindowDay {
			t.Errorf("expected day window, got %s", gotWindow)
		}
	})

	t.Run("returns 400 on unknown window", func(t *testing.T) {
		r := setupFinanceRouter(NewFinanceHandler(&mockFinanceService{}))
		w := performJSON(r, http.MethodGet, "/statistics?window=year", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestFinanceHandler_Reset(t *testing.T) {
	called := false
	svc := &mockFinanceService{
		resetAllFn: func(context.Context) error {
			called = true
			return nil
		},
	}
	r := setupFinanceRouter(NewFinanceHandler(svc))

	w := performJSON(r, http.MethodPost, "/reset", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !called {
		t.Error("expected reset to be invoked")
	}
}

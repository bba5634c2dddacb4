package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "duitku/internal/errors"
	"duitku/internal/period"
	"duitku/internal/services"
)

// FinanceHandler handles balances, budget evaluation, statistics, and reset.
type FinanceHandler struct {
	financeService services.FinanceServicer
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(financeService services.FinanceServicer) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// GetBalances handles fetching the current balances
// @Summary     Get balances
// @Description Get the current bank, cash, and savings balances
// @Tags        finance
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Balances
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /balances [get]
func (h *FinanceHandler) GetBalances(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"balances": h.financeService.Balances()})
}

// EvaluateBudget handles pure budget evaluation of a prospective cash expense
// @Summary     Evaluate budget
// @Description Classify a prospective cash expense against today's cash spending without committing anything
// @Tags        finance
// @Produce     json
// @Security    BearerAuth
// @Param       amount query int true "Prospective expense amount"
// @Success     200 {object} budget.Evaluation
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /budget/evaluate [get]
func (h *FinanceHandler) EvaluateBudget(c *gin.Context) {
	amount, err := strconv.ParseInt(c.Query("amount"), 10, 64)
	if err != nil || amount <= 0 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a positive integer"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"evaluation": h.financeService.EvaluateBudget(amount, time.Now().UTC())})
}

// StatisticsRequest captures the statistics query parameters.
type StatisticsRequest struct {
	Window string `form:"window" binding:"omitempty,stats_window"`
}

// GetStatistics handles windowed statistics
// @Summary     Get statistics
// @Description Get per-type totals, category breakdown, and the trailing 7-day series for a day, week, or month window
// @Tags        finance
// @Produce     json
// @Security    BearerAuth
// @Param       window query string false "Aggregation window" Enums(day, week, month) default(day)
// @Success     200 {object} stats.WindowSummary
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /statistics [get]
func (h *FinanceHandler) GetStatistics(c *gin.Context) {
	var req StatisticsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "window must be day, week, or month"))
		return
	}
	w := period.WindowDay
	if req.Window != "" {
		w = period.Window(req.Window)
	}

	c.JSON(http.StatusOK, gin.H{"statistics": h.financeService.Statistics(w, time.Now().UTC())})
}

// Reset handles the destructive full reset
// @Summary     Reset all data
// @Description Delete all transactions and goals and restore default settings. Irreversible.
// @Tags        finance
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]string "All data reset"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Persistence failure"
// @Router      /reset [post]
func (h *FinanceHandler) Reset(c *gin.Context) {
	if err := h.financeService.ResetAll(c.Request.Context()); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All data reset"})
}

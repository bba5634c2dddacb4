package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "duitku/internal/errors"
	"duitku/internal/services"
)

// GoalHandler handles savings goal requests.
type GoalHandler struct {
	financeService services.FinanceServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(financeService services.FinanceServicer) *GoalHandler {
	return &GoalHandler{financeService: financeService}
}

// CreateGoalRequest represents the request payload for creating a savings goal
type CreateGoalRequest struct {
	Name         string     `json:"name" binding:"required,max=100"`
	TargetAmount int64      `json:"target_amount" binding:"required,gt=0"`
	Deadline     *time.Time `json:"deadline"`
}

// CreateGoal handles the creation of a new savings goal
// @Summary     Create a savings goal
// @Description Create a savings goal tracked against the pooled savings balance
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} models.SavingsGoal "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Persistence failure"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.financeService.AddGoal(c.Request.Context(), req.Name, req.TargetAmount, req.Deadline)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// GetGoals handles listing savings goals
// @Summary     List savings goals
// @Description Get all savings goals with progress derived from the pooled savings balance
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.GoalView
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"goals": h.financeService.ListGoals()})
}

// DeleteGoal handles deleting a savings goal
// @Summary     Delete a savings goal
// @Description Delete a savings goal. The pooled savings balance is untouched.
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Goal ID"
// @Success     200 {object} map[string]string "Goal deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     502 {object} ErrorResponse "Persistence failure"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.financeService.DeleteGoal(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}

// SyncGoal handles refreshing a goal's cached progress
// @Summary     Sync goal progress
// @Description Refresh the goal's cached current amount from the pooled savings balance
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Goal ID"
// @Success     200 {object} services.GoalView
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     502 {object} ErrorResponse "Persistence failure"
// @Router      /goals/{id}/sync [post]
func (h *GoalHandler) SyncGoal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.financeService.SyncGoalProgress(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": view})
}

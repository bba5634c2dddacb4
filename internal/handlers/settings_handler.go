package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "duitku/internal/errors"
	"duitku/internal/models"
	"duitku/internal/services"
)

// SettingsHandler handles budget settings requests.
type SettingsHandler struct {
	financeService services.FinanceServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(financeService services.FinanceServicer) *SettingsHandler {
	return &SettingsHandler{financeService: financeService}
}

// UpdateSettingsRequest represents the request payload for replacing the settings
type UpdateSettingsRequest struct {
	DailyCashLimit      int64 `json:"daily_cash_limit" binding:"required,gt=0"`
	EnableNotifications bool  `json:"enable_notifications"`
}

// GetSettings handles fetching the budget settings
// @Summary     Get settings
// @Description Get the current budget settings
// @Tags        settings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.BudgetSettings
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settings": h.financeService.Settings()})
}

// UpdateSettings handles replacing the budget settings
// @Summary     Update settings
// @Description Replace the budget settings wholesale
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateSettingsRequest true "New settings"
// @Success     200 {object} models.BudgetSettings
// @Failure     400 {object} ErrorResponse "Invalid settings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Persistence failure"
// @Router      /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	settings, err := h.financeService.UpdateSettings(c.Request.Context(), models.BudgetSettings{
		DailyCashLimit:      req.DailyCashLimit,
		EnableNotifications: req.EnableNotifications,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"duitku/internal/budget"
	apperrors "duitku/internal/errors"
	"duitku/internal/models"
	"duitku/internal/pagination"
	"duitku/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	financeService services.FinanceServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(financeService services.FinanceServicer) *TransactionHandler {
	return &TransactionHandler{financeService: financeService}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Type          models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount        int64                  `json:"amount" binding:"required,gt=0"`
	Description   string                 `json:"description" binding:"required,max=100"`
	Account       models.AccountType     `json:"account" binding:"required,account_type"`
	TargetAccount *models.AccountType    `json:"target_account" binding:"omitempty,transfer_account"`
	Category      *models.Category       `json:"category" binding:"omitempty,expense_category"`

	// ConfirmOverBudget acknowledges a prior over-the-limit evaluation.
	ConfirmOverBudget bool `json:"confirm_over_budget"`
}

// CreateTransactionResponse represents the outcome of an add. When the add
// was withheld pending over-budget confirmation, transaction is absent and
// budget carries the evaluation.
type CreateTransactionResponse struct {
	Transaction *models.Transaction `json:"transaction,omitempty"`
	Budget      *budget.Evaluation  `json:"budget,omitempty"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Add an income, expense, transfer, or save transaction. A cash expense projecting over the daily limit is withheld and answered with the budget evaluation unless confirm_over_budget is set.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} CreateTransactionResponse "Transaction committed"
// @Success     200 {object} CreateTransactionResponse "Withheld pending over-budget confirmation"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient balance"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Persistence failure"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.financeService.AddTransaction(c.Request.Context(), services.AddTransactionInput{
		Type:              req.Type,
		Amount:            req.Amount,
		Description:       req.Description,
		Account:           req.Account,
		TargetAccount:     req.TargetAccount,
		Category:          req.Category,
		ConfirmOverBudget: req.ConfirmOverBudget,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	if result.Transaction == nil {
		c.JSON(http.StatusOK, gin.H{"budget": result.Budget})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transaction": result.Transaction, "budget": result.Budget})
}

// GetTransactions handles listing transactions
// @Summary     List transactions
// @Description Get the transaction list, newest first, paginated
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Page size" default(20)
// @Success     200 {object} pagination.PageResponse[models.Transaction]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.financeService.ListTransactions(page))
}

// GetTransaction handles fetching a single transaction
// @Summary     Get a transaction
// @Description Get a single transaction by id
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	txn, err := h.financeService.GetTransaction(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": txn})
}

// DeleteTransaction handles deleting a transaction
// @Summary     Delete a transaction
// @Description Delete a transaction and reverse its effect on the balances
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} map[string]string "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     502 {object} ErrorResponse "Persistence failure"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.financeService.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}

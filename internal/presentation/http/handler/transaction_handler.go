package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sangkips/erp-api/internal/application/service"
	"github.com/sangkips/erp-api/internal/presentation/http/dto/response"
)

// TransactionHandler handles financial transaction requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// List handles listing transactions by date, newest first
func (h *TransactionHandler) List(c *gin.Context) {
	transactions, err := h.transactionService.ListTransactions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "Transactions retrieved successfully", transactions)
}

// Create handles recording a transaction
func (h *TransactionHandler) Create(c *gin.Context) {
	var req service.TransactionInput
	if !bindJSON(c, &req) {
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction created successfully", transaction)
}

// Get handles getting a single transaction
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Transaction")
	if !ok {
		return
	}

	transaction, err := h.transactionService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", transaction)
}

// Update handles updating a transaction
func (h *TransactionHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Transaction")
	if !ok {
		return
	}

	var req service.TransactionInput
	if !bindJSON(c, &req) {
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction updated successfully", transaction)
}

// Delete handles deleting a transaction
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Transaction")
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction deleted successfully", nil)
}

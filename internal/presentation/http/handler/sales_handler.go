package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sangkips/erp-api/internal/application/service"
	"github.com/sangkips/erp-api/internal/presentation/http/dto/response"
)

// SalesHandler handles sales order requests
type SalesHandler struct {
	salesService *service.SalesService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(salesService *service.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// List handles listing sales orders by date, newest first
func (h *SalesHandler) List(c *gin.Context) {
	sales, err := h.salesService.ListSales(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "Sales retrieved successfully", sales)
}

// Create handles placing a sales order. Customer and product details are
// copied from the referenced documents and line totals are computed here,
// whatever the body says.
func (h *SalesHandler) Create(c *gin.Context) {
	var req service.SaleInput
	if !bindJSON(c, &req) {
		return
	}

	sale, err := h.salesService.CreateSale(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale created successfully", sale)
}

// Get handles getting a single sales order
func (h *SalesHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Sale")
	if !ok {
		return
	}

	sale, err := h.salesService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// Update handles updating a sales order
func (h *SalesHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Sale")
	if !ok {
		return
	}

	var req service.SaleInput
	if !bindJSON(c, &req) {
		return
	}

	sale, err := h.salesService.UpdateSale(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale updated successfully", sale)
}

// Delete handles deleting a sales order
func (h *SalesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Sale")
	if !ok {
		return
	}

	if err := h.salesService.DeleteSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale deleted successfully", nil)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sangkips/erp-api/internal/application/service"
	"github.com/sangkips/erp-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles metrics and overview requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// SalesMetrics handles GET /sales/metrics
func (h *DashboardHandler) SalesMetrics(c *gin.Context) {
	metrics, err := h.dashboardService.GetSalesMetrics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales metrics retrieved successfully", metrics)
}

// FinancialMetrics handles GET /financial/metrics
func (h *DashboardHandler) FinancialMetrics(c *gin.Context) {
	metrics, err := h.dashboardService.GetFinancialMetrics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Financial metrics retrieved successfully", metrics)
}

// Overview handles GET /dashboard/overview
func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.dashboardService.GetOverview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard overview retrieved successfully", overview)
}

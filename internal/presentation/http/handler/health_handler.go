package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/erp-api/internal/application/service"
)

// HealthHandler answers the liveness probe
type HealthHandler struct {
	healthService *service.HealthService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(healthService *service.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// Check reports that the API is up together with the database state. It
// answers 200 even when the database is unreachable.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthService.Check(c.Request.Context()))
}

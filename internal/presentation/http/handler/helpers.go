package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sangkips/erp-api/internal/application/service"
	"github.com/sangkips/erp-api/internal/presentation/http/dto/response"
	"github.com/sangkips/erp-api/internal/presentation/http/middleware"
	"github.com/sangkips/erp-api/pkg/apperror"
)

// GetPrincipal extracts the authenticated caller from the Gin context
func GetPrincipal(c *gin.Context) *service.Principal {
	value, exists := c.Get(middleware.PrincipalKey)
	if !exists {
		return nil
	}
	principal, ok := value.(*service.Principal)
	if !ok {
		return nil
	}
	return principal
}

// parseID reads the :id path parameter. An id that cannot be parsed cannot
// name a stored document, so it is answered like a missing one.
func parseID(c *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewNotFoundError(resource))
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body into dst and answers 400 when it is not
// valid JSON for the target type
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/erp-api/internal/application/service"
	"github.com/sangkips/erp-api/internal/presentation/http/dto/response"
)

// PrincipalKey is the gin context key holding the authenticated *service.Principal
const PrincipalKey = "principal"

// Authenticator resolves a bearer token to its principal
type Authenticator interface {
	Authenticate(token string) (*service.Principal, error)
}

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			return
		}

		principal, err := auth.Authenticate(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// principalName returns the subject of the authenticated caller, or
// "anonymous" when the request was not authenticated
func principalName(c *gin.Context) string {
	if value, ok := c.Get(PrincipalKey); ok {
		if principal, ok := value.(*service.Principal); ok && principal.Subject != "" {
			return principal.Subject
		}
	}
	return "anonymous"
}

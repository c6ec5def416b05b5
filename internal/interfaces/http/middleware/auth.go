package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vendra-inc/vendra/internal/infrastructure/auth"
	"github.com/vendra-inc/vendra/internal/shared/constants"
	"github.com/vendra-inc/vendra/internal/shared/logger"
	"github.com/vendra-inc/vendra/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth accepts both admin and staff tokens.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.verifyRequest(c)
		if !ok {
			return
		}

		c.Set(constants.ContextKeySubjectSID, claims.SubjectSID)
		c.Set(constants.ContextKeyRole, claims.Role)

		c.Next()
	}
}

// RequireAdmin restricts the route to the administrator token.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.verifyRequest(c)
		if !ok {
			return
		}

		if claims.Role != constants.RoleAdmin {
			utils.ErrorResponse(c, http.StatusForbidden, "administrator access required")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeySubjectSID, claims.SubjectSID)
		c.Set(constants.ContextKeyRole, claims.Role)

		c.Next()
	}
}

func (m *AuthMiddleware) verifyRequest(c *gin.Context) (*auth.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		c.Abort()
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
		c.Abort()
		return nil, false
	}

	claims, err := m.jwtService.Verify(parts[1])
	if err != nil {
		m.logger.Warnw("failed to verify token", "error", err)
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
		c.Abort()
		return nil, false
	}

	return claims, true
}

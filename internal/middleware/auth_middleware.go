package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rcabrera/studentrecords/internal/app/models"
	"github.com/rcabrera/studentrecords/internal/app/models/dto"
	"github.com/rcabrera/studentrecords/internal/pkg/apperrors"
	"github.com/rcabrera/studentrecords/internal/pkg/auth"
)

// Context keys set by SessionAuth
const (
	CtxUserID   = "userID"
	CtxUsername = "username"
	CtxRole     = "role"
)

// AuthMiddleware gates API requests on a valid session cookie
type AuthMiddleware struct {
	sessionService *auth.SessionService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessionService *auth.SessionService) *AuthMiddleware {
	return &AuthMiddleware{
		sessionService: sessionService,
	}
}

// SessionAuth verifies the session cookie and stores the caller's identity
// in the request context. Missing, expired and tampered tokens are all
// rejected the same way: 401 with no further detail.
func (m *AuthMiddleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
			return
		}

		claims, err := m.sessionService.VerifyToken(token)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) || errors.Is(err, apperrors.ErrTokenInvalid) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxRole, claims.Role)

		c.Next()
	}
}

// AdminRequired rejects callers whose session role is not admin.
// Must run after SessionAuth.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
			return
		}

		if roleStr, ok := role.(string); !ok || roleStr != string(models.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Forbidden: Admin access required"))
			return
		}

		c.Next()
	}
}

// CallerRole returns the session role stored by SessionAuth
func CallerRole(c *gin.Context) models.Role {
	role, exists := c.Get(CtxRole)
	if !exists {
		return ""
	}
	roleStr, ok := role.(string)
	if !ok {
		return ""
	}
	return models.Role(roleStr)
}

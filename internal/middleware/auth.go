package middleware

import (
	"strings"

	"pettime_backend/internal/auth"
	"pettime_backend/internal/logger"
	"pettime_backend/internal/models"
	"pettime_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = "userID"
	userRoleKey = "userRole"
)

// AuthMiddleware validates the Bearer token and stores the caller's identity
// on the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Token não fornecido."))
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == header {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Formato de token inválido."))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Token inválido ou expirado."))
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Token inválido ou expirado."))
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Set(userRoleKey, claims.Role)

		// Attach the user to the request context for downstream log lines.
		ctx := logger.WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAdmin allows only authenticated admins through.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) != string(models.UserRoleAdmin) {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Acesso restrito a administradores."))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user's id, or 0 when unauthenticated.
func GetUserID(c *gin.Context) uint {
	val, ok := c.Get(userIDKey)
	if !ok {
		return 0
	}
	id, _ := val.(uint)
	return id
}

// GetUserRole returns the authenticated user's role string.
func GetUserRole(c *gin.Context) string {
	val, ok := c.Get(userRoleKey)
	if !ok {
		return ""
	}
	role, _ := val.(string)
	return role
}

// IsAdmin reports whether the caller holds the admin role.
func IsAdmin(c *gin.Context) bool {
	return GetUserRole(c) == string(models.UserRoleAdmin)
}

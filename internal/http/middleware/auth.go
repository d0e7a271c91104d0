package middleware

import (
	"net/http"
	"strings"

	"dashboard/internal/domain"
	"dashboard/internal/services"
	"dashboard/internal/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth.
const (
	UserIDKey         = "userID"
	UserRoleKey       = "userRole"
	RequestContextKey = "requestContext"
)

// RequireAuth validates "Authorization: Bearer <jwt>" and stores the caller in the context.
func RequireAuth(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		claims, err := auth.ParseToken(strings.TrimSpace(token))
		if err != nil {
			utils.LogEvent(GetRequestID(c), "auth", "token_rejected", err.Error())
			abortUnauthorized(c, err.Error())
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserRoleKey, claims.Role)
		c.Set(RequestContextKey, domain.RequestContext{
			UserID:    claims.UserID,
			Role:      claims.Role,
			RequestID: GetRequestID(c),
		})
		c.Next()
	}
}

// GetRequestContext returns the caller stored by RequireAuth, or a zero value on public routes.
func GetRequestContext(c *gin.Context) domain.RequestContext {
	if v, ok := c.Get(RequestContextKey); ok {
		if rc, ok := v.(domain.RequestContext); ok {
			return rc
		}
	}
	return domain.RequestContext{RequestID: GetRequestID(c)}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      msg,
		"code":       "unauthorized",
		"request_id": GetRequestID(c),
	})
}

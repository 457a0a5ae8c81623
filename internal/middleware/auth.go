package middleware

import (
	"strings"

	"review-srv/pkg/jwt"
	"review-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth protects write routes with a Bearer JWT. When no manager is
// configured every request passes.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.jwtManager == nil {
			c.Next()
			return
		}

		// Support both "Bearer <token>" and plain token
		tokenString := strings.TrimSpace(c.GetHeader("Authorization"))
		if after, ok := strings.CutPrefix(tokenString, "Bearer "); ok {
			tokenString = strings.TrimSpace(after)
		}
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := m.jwtManager.VerifyToken(tokenString)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: VerifyToken failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := jwt.SetClaimsToContext(c.Request.Context(), claims)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

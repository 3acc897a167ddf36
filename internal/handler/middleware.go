package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"streamflix/internal/model"
	"streamflix/internal/security"
)

const adminIDKey = "admin_id"

// RequireAdmin gates mutating routes behind a bearer token carrying the
// admin role. Rejected requests are aborted before any handler runs, so
// they never reach the store.
func RequireAdmin(tokens *security.TokenManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			respondError(ctx, http.StatusUnauthorized, "No token provided")
			ctx.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Verify(token)
		if err != nil {
			respondError(ctx, http.StatusUnauthorized, "Invalid or expired token")
			ctx.Abort()
			return
		}

		if claims.Role != string(model.RoleAdmin) {
			respondError(ctx, http.StatusUnauthorized, "Unauthorized access")
			ctx.Abort()
			return
		}

		ctx.Set(adminIDKey, claims.ID)
		ctx.Next()
	}
}

// RequestLogger records one structured line per request.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		logger.Info("request",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

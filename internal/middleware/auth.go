package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/devconnector/internal/logger"
	"github.com/thereayou/devconnector/internal/services"
	"github.com/thereayou/devconnector/pkg/auth"
)

const (
	IdentityKey = "identity"
	TokenKey    = "token"
)

// AuthMiddleware проверяет JWT токен из заголовка Authorization
func AuthMiddleware(jwtManager *auth.JWTManager, blacklist services.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			abortUnauthorized(c, "missing or invalid token")
			return
		}
		authenticate(c, jwtManager, blacklist, token)
	}
}

// WSAuthMiddleware специальный middleware для WebSocket: браузер не умеет
// ставить заголовки при рукопожатии, поэтому токен можно передать в ?token=
func WSAuthMiddleware(jwtManager *auth.JWTManager, blacklist services.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.Query("token"), "Bearer ")
		if token == "" {
			token, _ = auth.ExtractTokenFromHeader(c.Request)
		}
		if token == "" {
			abortUnauthorized(c, "missing token")
			return
		}
		authenticate(c, jwtManager, blacklist, token)
	}
}

func authenticate(c *gin.Context, jwtManager *auth.JWTManager, blacklist services.TokenBlacklist, token string) {
	// Проверяем, не в черном списке ли токен
	revoked, err := blacklist.IsRevoked(c.Request.Context(), token)
	if err != nil {
		logger.LogEf("token blacklist lookup: %v", err)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "token store unavailable"})
		return
	}
	if revoked {
		abortUnauthorized(c, "token is revoked")
		return
	}

	claims, err := jwtManager.Verify(token)
	if err != nil {
		abortUnauthorized(c, "invalid token")
		return
	}

	c.Set(IdentityKey, claims.Identity)
	c.Set(TokenKey, token)
	c.Next()
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// CurrentUser возвращает пользователя, которого положил AuthMiddleware
func CurrentUser(c *gin.Context) auth.Identity {
	return c.MustGet(IdentityKey).(auth.Identity)
}

// CurrentToken исходный токен запроса (нужен для logout)
func CurrentToken(c *gin.Context) string {
	return c.GetString(TokenKey)
}

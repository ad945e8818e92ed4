package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thereayou/devconnector/internal/cache"
	"github.com/thereayou/devconnector/internal/services"
	"github.com/thereayou/devconnector/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(jwtMgr *auth.JWTManager, blacklist services.TokenBlacklist) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/private", AuthMiddleware(jwtMgr, blacklist), func(c *gin.Context) {
		user := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": user.ID, "name": user.Name, "token": CurrentToken(c)})
	})
	r.GET("/ws", WSAuthMiddleware(jwtMgr, blacklist), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUser(c).ID})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	jwtMgr := auth.NewJWTManager("secret", time.Hour)
	blacklist := cache.NewMemoryBlacklist(time.Minute)
	r := newProtectedRouter(jwtMgr, blacklist)

	token, err := jwtMgr.Generate(auth.Identity{ID: "u1", Name: "John"})
	require.NoError(t, err)
	expired, err := auth.NewJWTManager("secret", -time.Minute).Generate(auth.Identity{ID: "u1"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "valid", header: "Bearer " + token, status: http.StatusOK},
		{name: "missing", header: "", status: http.StatusUnauthorized},
		{name: "no bearer prefix", header: token, status: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, status: http.StatusUnauthorized},
		{name: "tampered", header: "Bearer " + token + "x", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"id":"u1"`)
				assert.Contains(t, w.Body.String(), `"name":"John"`)
			}
		})
	}
}

func TestAuthMiddlewareRejectsRevokedToken(t *testing.T) {
	jwtMgr := auth.NewJWTManager("secret", time.Hour)
	blacklist := cache.NewMemoryBlacklist(time.Minute)
	r := newProtectedRouter(jwtMgr, blacklist)

	token, err := jwtMgr.Generate(auth.Identity{ID: "u1"})
	require.NoError(t, err)
	require.NoError(t, blacklist.Revoke(context.Background(), token, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWSAuthMiddlewareAcceptsQueryToken(t *testing.T) {
	jwtMgr := auth.NewJWTManager("secret", time.Hour)
	r := newProtectedRouter(jwtMgr, cache.NewMemoryBlacklist(time.Minute))

	token, err := jwtMgr.Generate(auth.Identity{ID: "u1"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws?token="+token, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// brokenBlacklist имитирует недоступный redis
type brokenBlacklist struct{}

func (brokenBlacklist) Revoke(context.Context, string, time.Duration) error {
	return errors.New("connection refused")
}

func (brokenBlacklist) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("connection refused")
}

func TestAuthMiddlewareBlacklistUnavailable(t *testing.T) {
	jwtMgr := auth.NewJWTManager("secret", time.Hour)
	r := newProtectedRouter(jwtMgr, brokenBlacklist{})

	token, err := jwtMgr.Generate(auth.Identity{ID: "u1"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "token store unavailable")
}

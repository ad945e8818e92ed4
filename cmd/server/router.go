package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/devconnector/internal/handlers"
	"github.com/thereayou/devconnector/internal/middleware"
	"github.com/thereayou/devconnector/internal/services"
	"github.com/thereayou/devconnector/pkg/auth"
)

// Handlers набор обработчиков API
type Handlers struct {
	Auth      *handlers.AuthHandler
	Profile   *handlers.ProfileHandler
	Post      *handlers.PostHandler
	WebSocket *handlers.WebSocketHandler
	Health    *handlers.HealthHandler
}

func APIEndpoints(r *gin.Engine, h Handlers, jwtMgr *auth.JWTManager, blacklist services.TokenBlacklist) {
	private := middleware.AuthMiddleware(jwtMgr, blacklist)

	r.GET("/health", h.Health.Check)

	users := r.Group("/api/users")
	{
		users.POST("/register", h.Auth.Register)
		users.POST("/login", h.Auth.Login)
		users.GET("/current", private, h.Auth.Current)
		users.POST("/logout", private, h.Auth.Logout)
	}

	profile := r.Group("/api/profile")
	{
		profile.GET("/all", h.Profile.All)
		profile.GET("/handle/:handle", h.Profile.ByHandle)
		profile.GET("/id/:id", h.Profile.ByUserID)

		handleRoot(profile, http.MethodGet, private, h.Profile.Current)
		handleRoot(profile, http.MethodPost, private, h.Profile.Save)
		handleRoot(profile, http.MethodDelete, private, h.Profile.DeleteAccount)
		profile.POST("/experience", private, h.Profile.AddExperience)
		profile.POST("/education", private, h.Profile.AddEducation)
		profile.DELETE("/experience/:id", private, h.Profile.DeleteExperience)
		profile.DELETE("/education/:id", private, h.Profile.DeleteEducation)
	}

	posts := r.Group("/api/posts")
	{
		posts.GET("/test", h.Post.Test)
		handleRoot(posts, http.MethodGet, h.Post.List)
		posts.GET("/:id", h.Post.Get)

		// WebSocket лента событий
		posts.GET("/stream", middleware.WSAuthMiddleware(jwtMgr, blacklist), h.WebSocket.HandleWebSocket)

		handleRoot(posts, http.MethodPost, private, h.Post.Create)
		posts.DELETE("/:id", private, h.Post.Delete)
		posts.POST("/like/:id", private, h.Post.Like)
		posts.POST("/unlike/:id", private, h.Post.Unlike)
		posts.POST("/comment/:id", private, h.Post.Comment)
		posts.DELETE("/comment/:id/:comment_id", private, h.Post.DeleteComment)
	}
}

// handleRoot корень группы отвечает и без слэша, и со слэшем, без редиректа
func handleRoot(g *gin.RouterGroup, method string, handlers ...gin.HandlerFunc) {
	g.Handle(method, "", handlers...)
	g.Handle(method, "/", handlers...)
}

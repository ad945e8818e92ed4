package handlers

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/thereayou/devconnector/internal/handlers/dto"
	"github.com/thereayou/devconnector/internal/middleware"
	"github.com/thereayou/devconnector/internal/models"
	"github.com/thereayou/devconnector/internal/services"
	"github.com/thereayou/devconnector/internal/validation"
	"github.com/thereayou/devconnector/pkg/auth"
)

type AuthHandler struct {
	db         services.DatabaseService
	jwtManager *auth.JWTManager
	blacklist  services.TokenBlacklist
}

func NewAuthHandler(db services.DatabaseService, jwtMgr *auth.JWTManager, blacklist services.TokenBlacklist) *AuthHandler {
	return &AuthHandler{db: db, jwtManager: jwtMgr, blacklist: blacklist}
}

// Register регистрирует нового пользователя
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bind(c, &req) {
		return
	}

	errs, ok := validation.Register(req)
	if !ok {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	ctx := c.Request.Context()
	email := normalizeEmail(req.Email)

	_, err := h.db.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		errs["email"] = "Email already exists!"
		c.JSON(http.StatusBadRequest, errs)
		return
	case !errors.Is(err, services.ErrNotFound):
		internalError(c, "register: find user", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		internalError(c, "register: hash password", err)
		return
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hash),
		Avatar:   gravatarURL(email),
		Date:     time.Now(),
	}

	if err := h.db.SaveUser(ctx, user); err != nil {
		// Гонка двух регистраций одного email ловится уникальным индексом
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, validation.Errors{"email": "Email already exists!"})
			return
		}
		internalError(c, "register: save user", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Login выдаёт JWT
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bind(c, &req) {
		return
	}

	errs, ok := validation.Login(req)
	if !ok {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	user, err := h.db.FindUserByEmail(c.Request.Context(), normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			errs["email"] = "Invalid Email"
			c.JSON(http.StatusNotFound, errs)
			return
		}
		internalError(c, "login: find user", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		errs["password"] = "Incorrect Password"
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	token, err := h.jwtManager.Generate(auth.Identity{ID: user.ID, Name: user.Name, Avatar: user.Avatar})
	if err != nil {
		internalError(c, "login: generate token", err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Success: true, Token: "Bearer " + token})
}

// Current возвращает текущего пользователя
func (h *AuthHandler) Current(c *gin.Context) {
	identity := middleware.CurrentUser(c)

	user, err := h.db.GetUser(c.Request.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user no longer exists"})
			return
		}
		internalError(c, "current: get user", err)
		return
	}

	c.JSON(http.StatusOK, dto.CurrentUserResponse{ID: user.ID, Name: user.Name, Email: user.Email})
}

// Logout ставит токен в черный список до истечения
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.CurrentToken(c)

	exp, err := h.jwtManager.Expiry(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	if err := h.blacklist.Revoke(c.Request.Context(), token, time.Until(exp)); err != nil {
		internalError(c, "logout: revoke token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// gravatarURL аватар размера 200, рейтинг pg, заглушка mystery-man
func gravatarURL(email string) string {
	sum := md5.Sum([]byte(normalizeEmail(email)))
	return "//www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/devconnector/internal/services"
)

type HealthHandler struct {
	db services.DatabaseService
}

func NewHealthHandler(db services.DatabaseService) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check проверяет доступность хранилища
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

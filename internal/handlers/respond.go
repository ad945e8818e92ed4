package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/devconnector/internal/logger"
)

// bind разбирает тело запроса (JSON или форма); при ошибке отвечает 400
func bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// internalError логирует ошибку хранилища и отвечает 500
func internalError(c *gin.Context, scope string, err error) {
	logger.LogEf("%s: %v", scope, err)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

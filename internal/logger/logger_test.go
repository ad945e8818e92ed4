package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/thereayou/devconnector/internal/logger"
)

func TestLogI(t *testing.T) {
	buf := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(buf))

	logger.LogI("server started")

	assert.Contains(t, buf.String(), `"message":"server started"`)
	assert.Contains(t, buf.String(), `"level":"INFO"`)
}

func TestLogEf(t *testing.T) {
	buf := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(buf))

	logger.LogEf("save post: %v", "boom")

	assert.Contains(t, buf.String(), `"message":"save post: boom"`)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestLogW(t *testing.T) {
	buf := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(buf))

	logger.LogW("REDIS_URL not set")

	assert.Contains(t, buf.String(), `"message":"REDIS_URL not set"`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestLogWithField(t *testing.T) {
	buf := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(buf))

	logger.LogWithField(zapcore.InfoLevel, map[string]interface{}{
		"message": "request",
		"status":  200,
		"path":    "/api/posts",
	})

	assert.Contains(t, buf.String(), `"message":"request"`)
	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"path":"/api/posts"`)
}

func TestOptionLevelFiltersEntries(t *testing.T) {
	buf := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(buf), logger.OptionLevel("error"))

	logger.LogI("hidden")
	logger.LogE("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

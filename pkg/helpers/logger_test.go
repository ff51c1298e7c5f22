package helpers

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger("app", "development", "").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("app", "production", "").GetLevel())
	assert.Equal(t, logrus.WarnLevel, NewLogger("app", "production", "warn").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("app", "production", "chatty").GetLevel())
}

func TestLogWarnFoldsError(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	LogWarn(logger, "cache read failed", errors.New("connection refused"), logrus.Fields{"key": "discord:channels"})
	assert.Contains(t, buf.String(), `"error":"connection refused"`)
	assert.Contains(t, buf.String(), `"key":"discord:channels"`)
	assert.Contains(t, buf.String(), `"level":"warning"`)

	LogWarn(nil, "ignored", nil, nil)
}

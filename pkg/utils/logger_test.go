package utils

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, parseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, parseLevel(" WARN "))
	assert.Equal(t, logrus.ErrorLevel, parseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, parseLevel(""))
	assert.Equal(t, logrus.InfoLevel, parseLevel("verbose"))
}

func TestInitLogger_ExplicitLevelWins(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	InitLogger("debug")
	assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel())

	InitLogger("")
	assert.Equal(t, logrus.ErrorLevel, GetLogger().GetLevel())
}

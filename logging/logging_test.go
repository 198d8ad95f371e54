package logging

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"testing"
)

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(zap.DebugLevel)
	require.NoError(t, err, "create should not fail")
	require.NotNil(t, logger, "should return logger")
	logger.Debug("hello")
}

func TestRootLogger(t *testing.T) {
	myLogger := zap.NewNop()
	SetLogger(myLogger)
	assert.Same(t, myLogger, RootLogger(), "should return set logger")
}

func TestWrapName(t *testing.T) {
	assert.Equal(t, "<person>", WrapName("person"), "should wrap name")
}

package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arborist-net/mstnet/internal/logging"
)

func TestDefaultDoesNotPanic(t *testing.T) {
	logger := logging.Default("test")
	assert.NotPanics(t, func() {
		logger.Info("hello", "key", "value")
	})
}

func TestWithReturnsIndependentLogger(t *testing.T) {
	base := logging.Default("test")
	child := base.With("session_id", "abc")
	assert.NotNil(t, child.Slog())
	assert.NotPanics(t, func() { child.Debug("child log") })
}

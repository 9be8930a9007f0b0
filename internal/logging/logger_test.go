package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pathtrace/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		l, err := logging.New(lvl)
		require.NoError(t, err, lvl)
		want, _ := zapcore.ParseLevel(lvl)
		assert.True(t, l.Core().Enabled(want), lvl)
		assert.False(t, l.Core().Enabled(want-1), lvl)
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New("chatty")
	assert.Error(t, err)
}

func TestNewNop(t *testing.T) {
	assert.False(t, logging.NewNop().Core().Enabled(zapcore.ErrorLevel))
}

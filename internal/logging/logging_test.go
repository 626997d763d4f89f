package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.Level(-2), ParseLevel("trace"))
	assert.Equal(t, zap.DebugLevel, ParseLevel(" DEBUG "))
	assert.Equal(t, zap.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zap.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zap.InfoLevel, ParseLevel("whatever"))
}

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		l, err := New("debug", format)
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zap.DebugLevel), format)
		assert.False(t, l.Core().Enabled(zapcore.Level(-2)), format)
	}
}

func TestLogr_VerbosityMapping(t *testing.T) {
	core, logs := observer.New(ParseLevel("debug"))
	log := Logr(zap.New(core))

	log.Info("info")
	log.V(1).Info("v1", "k", 1)
	log.V(2).Info("v2")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "v1", logs.All()[1].Message)
	assert.Equal(t, int64(1), logs.All()[1].ContextMap()["k"])

	core, logs = observer.New(ParseLevel("trace"))
	Logr(zap.New(core)).V(2).Info("v2")
	assert.Equal(t, 1, logs.Len())
}

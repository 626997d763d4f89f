// Package logging builds the process logger: zap underneath, exposed to the
// libraries as a logr.Logger through zapr.
package logging

import (
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// traceLevel lets logr V(2) records (per-expansion engine logs) through.
// zapr maps V(n) to zap level -n.
const traceLevel = zapcore.Level(-2)

// ParseLevel maps a level name to a zap level; unknown names mean info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return traceLevel
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// New builds a zap logger. format "console" selects the development encoder,
// anything else JSON.
func New(level, format string) (*zap.Logger, error) {
	var zapCfg zap.Config
	if strings.EqualFold(format, "console") {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
		zapCfg.Sampling = nil
	}
	zapCfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	zapCfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))

	return zapCfg.Build()
}

// Logr adapts a zap logger for the engine and server.
func Logr(l *zap.Logger) logr.Logger {
	return zapr.NewLogger(l)
}

package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "grocery-be"

var log *zap.Logger

// New builds a logger for env: JSON in production, colored console
// otherwise. level overrides the env default when non-empty.
func New(env, level string) (*zap.Logger, error) {
	var cfg zap.Config

	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.MessageKey = "message"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{"stdout"}
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = lvl
	}

	built, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return nil, err
	}
	return built.With(zap.String("service", serviceName), zap.String("env", env)), nil
}

// Init replaces the global logger. An unusable level falls back to the
// env default.
func Init(env string, level ...string) {
	lvl := ""
	if len(level) > 0 {
		lvl = level[0]
	}

	built, err := New(env, lvl)
	if err != nil {
		built, err = New(env, "")
		if err != nil {
			panic(err)
		}
		built.Warn("ignoring log level", zap.String("level", lvl))
	}
	log = built
}

// L returns the global logger.
func L() *zap.Logger {
	if log == nil {
		Init(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))
	}
	return log
}

// Sync flushes logs.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

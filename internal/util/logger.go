package util

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger stays a no-op until InitLogger runs, so packages can log from tests.
var Logger = zap.NewNop()

func InitLogger(logLevel string) {
	config := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	config.Level.SetLevel(level)
	logger, err := config.Build()
	if err != nil {
		return
	}
	Logger = logger
}

// Error returns a zap.Field for an error
func Error(err error) zap.Field {
	return zap.Error(err)
}

// Int returns a zap.Field for an integer
func Int(key string, value int) zap.Field {
	return zap.Int(key, value)
}

package utils

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ginmongo/config"
)

// Global logger instance
var Logger *zap.Logger

// NewLogger builds a zap logger for cfg. Production gets JSON output at
// LOG_LEVEL; everything else gets the coloured development encoder at debug.
func NewLogger(cfg config.Config) (*zap.Logger, error) {
	var zcfg zap.Config

	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
		level := zap.NewAtomicLevelAt(zap.InfoLevel)
		if cfg.LogLevel != "" {
			parsed, err := zap.ParseAtomicLevel(cfg.LogLevel)
			if err != nil {
				return nil, err
			}
			level = parsed
		}
		zcfg.Level = level
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return zcfg.Build()
}

// InitializeLogger sets up the global logger from config.AppConfig.
func InitializeLogger() {
	var err error
	Logger, err = NewLogger(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(Logger)
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}

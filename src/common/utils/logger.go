package utils

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sharedLogger *zap.SugaredLogger

func InitLogger() {
	InitLoggerTo(zapcore.AddSync(os.Stdout))
}

// InitLoggerTo builds the shared logger on the given sink. The MCP server
// passes stderr because stdout carries the protocol.
func InitLoggerTo(sink zapcore.WriteSyncer) {
	if sharedLogger != nil {
		return
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		MessageKey:     "M",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.0000"),
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		sink,
		ParseLevel(os.Getenv("LOG_LEVEL")),
	)

	logger := zap.New(core, zap.AddCallerSkip(1))
	sharedLogger = logger.Sugar()
}

// ParseLevel falls back to info for empty or unknown levels.
func ParseLevel(lvl string) zapcore.Level {
	if lvl != "" {
		if parsedLevel, err := zapcore.ParseLevel(lvl); err == nil {
			return parsedLevel
		}
	}
	return zapcore.InfoLevel
}

func GetLogger() *zap.SugaredLogger {
	if sharedLogger == nil {
		InitLogger()
	}
	return sharedLogger
}

func SyncLogger() {
	if sharedLogger != nil {
		_ = sharedLogger.Sync()
	}
}

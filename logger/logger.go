package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Nop until Init runs, so packages can log safely under test.
var (
	baseLog = zap.NewNop()
	zapLog  = zap.NewNop()
)

// Init builds the process-wide logger. The console encoding is meant for
// local development, json for deployments.
func Init(level zapcore.Level, encoding string) error {

	var config zap.Config
	if encoding == "json" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.StacktraceKey = "" // to hide stacktrace info
	} else {
		config = zap.NewDevelopmentConfig()

		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.TimeKey = "time"
		encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("Jan _2 15:04:05.000000000")
		encoderConfig.StacktraceKey = "" // to hide stacktrace info
		config.EncoderConfig = encoderConfig
	}
	config.Level = zap.NewAtomicLevelAt(level) // Set to desired level

	built, err := config.Build()
	if err != nil {
		return err
	}
	baseLog = built
	// The package-level helpers add a frame, so skip it when reporting callers.
	zapLog = built.WithOptions(zap.AddCallerSkip(1))
	return nil
}

// L exposes the underlying logger for components that attach their own
// fields, such as the request logging middleware.
func L() *zap.Logger {
	return baseLog
}

func Info(message string, fields ...zap.Field) {
	zapLog.Info(message, fields...)
}

func Warn(message string, fields ...zap.Field) {
	zapLog.Warn(message, fields...)
}

func Debug(message string, fields ...zap.Field) {
	zapLog.Debug(message, fields...)
}

func Error(message string, fields ...zap.Field) {
	zapLog.Error(message, fields...)
}

func Fatal(message string, fields ...zap.Field) {
	zapLog.Fatal(message, fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	return baseLog.Sync()
}

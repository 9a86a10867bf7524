package logger

import (
	"os"

	"gitlab.com/golf-2025.net/internal/adapter/logging"
)

var Logger = logging.NewZapLogger()

func Info(msg string, args ...interface{}) {
	Logger.Info(msg, args...)
}

func Error(msg string, args ...interface{}) {
	Logger.Error(msg, args...)
}

func Debug(msg string, args ...interface{}) {
	Logger.Debug(msg, args...)
}

func Warn(msg string, args ...interface{}) {
	Logger.Warn(msg, args...)
}

// Fatal logs and exits, used before the service is up
func Fatal(msg string, args ...interface{}) {
	Logger.Error(msg, args...)
	_ = Logger.Sync()
	os.Exit(1)
}

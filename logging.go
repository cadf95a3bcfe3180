package gridscroll

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logLevel controls the level of the package logger.
// Default is InfoLevel, which suppresses the per-recomputation Debug lines.
// SetVerbose(true) lowers it to DebugLevel.
var logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// logger is the default logger for strategies created without WithLogger.
var logger = newDefaultLogger()

func newDefaultLogger() *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), logLevel)
	return zap.New(core).Named("gridscroll")
}

// SetVerbose enables or disables debug logging for the package logger.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.SetLevel(zapcore.DebugLevel)
	} else {
		logLevel.SetLevel(zapcore.InfoLevel)
	}
}

// SetLogger replaces the package logger used by strategies created afterwards
// without WithLogger. A nil logger disables logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *zap.Logger {
	return logger
}

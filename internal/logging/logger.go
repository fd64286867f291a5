package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields carries optional structured context for a log line.
type Fields map[string]interface{}

var base *zap.SugaredLogger

func init() {
	// Sane default so packages can log before main configures the level.
	base = zap.Must(zap.NewProduction()).Sugar()
}

// Configure rebuilds the logger with the given level ("debug", "info",
// "warn", "error"). Unknown levels fall back to info.
func Configure(level string) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return
	}
	base = logger.Sugar()
}

// Sync flushes any buffered log entries. Call on shutdown.
func Sync() { _ = base.Sync() }

func kvs(fields Fields) []interface{} {
	out := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		out = append(out, k, v)
	}
	return out
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	base.Infow(msg, kvs(fields)...)
}

// Error logs an error message and includes the error in the fields.
func Error(msg string, err error, fields Fields) {
	if err != nil {
		if fields == nil {
			fields = Fields{}
		}
		fields["error"] = err.Error()
	}
	base.Errorw(msg, kvs(fields)...)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	if err != nil {
		if fields == nil {
			fields = Fields{}
		}
		fields["error"] = err.Error()
	}
	base.Errorw(msg, kvs(fields)...)
	_ = base.Sync()
	os.Exit(1)
}

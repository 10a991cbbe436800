// Package logger provides a global, sugared Zap logger with an optional
// OpenTelemetry bridge. Until Init is called every call is discarded, so
// library packages can log unconditionally and tests stay quiet.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/gabapcia/nodewallet/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop().Sugar()
)

type fieldsKey struct{}

type config struct {
	level  string
	output io.Writer
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level ("debug", "info", "warn", "error").
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput redirects the JSON output. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// Init replaces the global logger with a JSON logger writing at the
// configured level. When telemetry registered a LoggerProvider, records are
// also forwarded through the otelzap bridge.
func Init(opts ...Option) error {
	cfg := config{
		level:  "info",
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(cfg.output),
			level,
		),
	}

	if lp := telemetry.LoggerProvider(); lp != nil {
		cores = append(cores, otelzap.NewCore("nodewallet", otelzap.WithLoggerProvider(lp)))
	}

	mu.Lock()
	logger = zap.New(zapcore.NewTee(cores...)).Sugar()
	mu.Unlock()

	return nil
}

// Sync flushes any buffered log entries.
func Sync() error {
	return current().Sync()
}

// WithFields returns a context carrying key/value pairs that are appended to
// every record logged with it.
func WithFields(ctx context.Context, keysAndValues ...any) context.Context {
	fields := append(fieldsFrom(ctx), keysAndValues...)
	return context.WithValue(ctx, fieldsKey{}, fields)
}

func fieldsFrom(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}

	fields, _ := ctx.Value(fieldsKey{}).([]any)
	return append([]any(nil), fields...)
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func withContext(ctx context.Context, keysAndValues []any) []any {
	return append(fieldsFrom(ctx), keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	current().Debugw(msg, withContext(ctx, keysAndValues)...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	current().Infow(msg, withContext(ctx, keysAndValues)...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	current().Warnw(msg, withContext(ctx, keysAndValues)...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	current().Errorw(msg, withContext(ctx, keysAndValues)...)
}

// Fatal logs a fatal-level message and exits.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	current().Fatalw(msg, withContext(ctx, keysAndValues)...)
}

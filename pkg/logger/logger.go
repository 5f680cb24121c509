// Package logger provides leveled logging for the git-repo application.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// TimeLayout is the timestamp layout used on every log line.
const TimeLayout = "01/02/2006 03:04:05 PM"

// Logger interface provides leveled logging capabilities.
type Logger interface {
	// Logf logs a formatted debug message, shown only in verbose mode.
	Logf(format string, args ...interface{})

	// Infof logs a formatted status message.
	Infof(format string, args ...interface{})

	// Errorf logs a formatted failure message.
	Errorf(format string, args ...interface{})
}

// Options configures the default logger.
type Options struct {
	// Verbose lowers the console level to debug.
	Verbose bool
	// LogFile receives every message at debug level when set.
	LogFile string
	// Console defaults to os.Stderr.
	Console io.Writer
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Infof does nothing for noop logger.
func (n *noopLogger) Infof(_ string, _ ...interface{}) {}

// Errorf does nothing for noop logger.
func (n *noopLogger) Errorf(_ string, _ ...interface{}) {}

// zapLogger writes colored lines to the console and plain lines to the log file.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewLogger builds a zap backed logger from the given options.
func NewLogger(opts Options) (Logger, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	consoleLevel := zapcore.InfoLevel
	if opts.Verbose {
		consoleLevel = zapcore.DebugLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig(zapcore.CapitalColorLevelEncoder)),
			zapcore.AddSync(console),
			consoleLevel,
		),
	}

	if opts.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.LogFile), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		sink, _, err := zap.Open(opts.LogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", opts.LogFile, err)
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig(zapcore.CapitalLevelEncoder)),
			sink,
			zapcore.DebugLevel,
		))
	}

	return &zapLogger{
		sugar: zap.New(zapcore.NewTee(cores...)).Sugar(),
	}, nil
}

func encoderConfig(levelEncoder zapcore.LevelEncoder) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      levelEncoder,
		EncodeTime:       zapcore.TimeEncoderOfLayout("[" + TimeLayout + "]"),
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
}

// Logf logs a debug message.
func (z *zapLogger) Logf(format string, args ...interface{}) {
	z.sugar.Debugf(format, args...)
}

// Infof logs an info message.
func (z *zapLogger) Infof(format string, args ...interface{}) {
	z.sugar.Infof(format, args...)
}

// Errorf logs an error message.
func (z *zapLogger) Errorf(format string, args ...interface{}) {
	z.sugar.Errorf(format, args...)
}

package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type loggerConfig struct {
	level       zapcore.Level
	development bool

	// Rotating file sink config. Only used when filePath is non-empty.
	filePath   string
	maxSizeMB  int
	maxBackups int
	maxAgeDays int
}

// LoggerOption is a functional option used to configure the logger during construction.
type LoggerOption func(*loggerConfig)

// WithLevel sets the minimum level at which log entries are emitted.
// The default is InfoLevel.
//
// Parameters:
//   - level: the minimum zapcore.Level to emit
//
// Returns:
//   - LoggerOption: a function that applies the level option to the logger config
func WithLevel(level zapcore.Level) LoggerOption {
	return func(c *loggerConfig) {
		c.level = level
	}
}

// WithDevelopment enables development mode: debug level, human-readable console
// encoding with colored levels, and caller annotations.
//
// Returns:
//   - LoggerOption: a function that applies the development option to the logger config
func WithDevelopment() LoggerOption {
	return func(c *loggerConfig) {
		c.development = true
		c.level = zapcore.DebugLevel
	}
}

// WithRotatingFile adds a JSON-encoded rotating file sink alongside the console output.
//
// Parameters:
//   - path: the log file path
//   - maxSizeMB: maximum size in megabytes before the file is rotated
//   - maxBackups: maximum number of rotated files to retain
//   - maxAgeDays: maximum age in days before rotated files are deleted
//
// Returns:
//   - LoggerOption: a function that applies the rotating file option to the logger config
func WithRotatingFile(path string, maxSizeMB, maxBackups, maxAgeDays int) LoggerOption {
	return func(c *loggerConfig) {
		c.filePath = path
		c.maxSizeMB = maxSizeMB
		c.maxBackups = maxBackups
		c.maxAgeDays = maxAgeDays
	}
}

// NewLogger creates a zap logger with a console core writing to stderr and,
// when configured via WithRotatingFile, a JSON core writing to a size-rotated
// log file. The two cores share the configured level.
//
// Parameters:
//   - options: variadic list of LoggerOption functions to configure the logger
//
// Returns:
//   - *zap.Logger: the configured logger
func NewLogger(options ...LoggerOption) *zap.Logger {
	cfg := &loggerConfig{
		level: zapcore.InfoLevel,
	}
	for _, opt := range options {
		opt(cfg)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.development {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		cfg.level,
	)

	core := consoleCore
	if cfg.filePath != "" {
		fileEncoderConfig := zap.NewProductionEncoderConfig()
		fileEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(fileEncoderConfig),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.filePath,
				MaxSize:    cfg.maxSizeMB,
				MaxBackups: cfg.maxBackups,
				MaxAge:     cfg.maxAgeDays,
			}),
			cfg.level,
		)
		core = zapcore.NewTee(consoleCore, fileCore)
	}

	opts := []zap.Option{}
	if cfg.development {
		opts = append(opts, zap.Development(), zap.AddCaller())
	}

	return zap.New(core, opts...)
}

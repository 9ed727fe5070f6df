package logging

import (
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Encoding selects the log line format.
type Encoding string

const (
	EncodingJSON    Encoding = "json"
	EncodingConsole Encoding = "console"
)

// NewLogger configures a JSON zap logger with level controlled by LOG_LEVEL env variable.
func NewLogger() (*zap.Logger, error) {
	return New(os.Getenv("LOG_LEVEL"), EncodingJSON)
}

// NewCLILogger returns a console logger writing to stderr so command output on stdout stays clean.
// Unless LOG_LEVEL says otherwise only warnings and errors are printed.
func NewCLILogger() (*zap.Logger, error) {
	level := os.Getenv("LOG_LEVEL")
	if strings.TrimSpace(level) == "" {
		level = "warn"
	}
	return New(level, EncodingConsole)
}

// New builds a logger for the given level name and encoding. Unknown levels fall back to info.
func New(levelName string, encoding Encoding) (*zap.Logger, error) {
	levelStr := strings.ToLower(strings.TrimSpace(levelName))
	var level zapcore.Level
	if err := level.Set(levelStr); err != nil {
		level = zapcore.InfoLevel
	}

	output := []string{"stdout"}
	if encoding == EncodingConsole {
		output = []string{"stderr"}
	} else {
		encoding = EncodingJSON
	}

	cfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         string(encoding),
		EncoderConfig:    encoderConfig(encoding),
		OutputPaths:      output,
		ErrorOutputPaths: []string{"stderr"},
	}

	return cfg.Build()
}

func encoderConfig(encoding Encoding) zapcore.EncoderConfig {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     func(t time.Time, enc zapcore.PrimitiveArrayEncoder) { enc.AppendString(t.UTC().Format(time.RFC3339Nano)) },
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if encoding == EncodingConsole {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.CallerKey = zapcore.OmitKey
	}
	return cfg
}

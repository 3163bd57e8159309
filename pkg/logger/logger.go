package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides a structured logging interface
type Logger struct {
	*zap.SugaredLogger
}

// New creates a logger with the given name that writes JSON lines to
// <dir>/<name>_<date>.log and human readable lines to stdout.
// An empty dir disables the file output.
func New(name, dir string) *Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stdout),
			zap.InfoLevel,
		),
	}

	if dir != "" {
		if fileWriter, err := openLogFile(name, dir); err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
		} else {
			cores = append(cores, zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.AddSync(fileWriter),
				zap.InfoLevel,
			))
		}
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Named(name)

	return &Logger{
		SugaredLogger: logger.Sugar(),
	}
}

// Zap returns the structured logger that components take in their constructors
func (l *Logger) Zap() *zap.Logger {
	return l.Desugar()
}

func openLogFile(name, dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	timestamp := time.Now().Format("20060102")
	logFile := filepath.Join(dir, fmt.Sprintf("%s_%s.log", name, timestamp))

	return os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}

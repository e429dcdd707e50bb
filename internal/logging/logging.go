// Package logging builds the application logger. The terminal belongs to the
// UI, so log lines go to a rotated file.
package logging

import (
	"io"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	// Path of the log file. Empty disables logging.
	Path       string
	Debug      bool
	MaxSizeMB  int
	MaxBackups int
}

// New returns a JSON logger writing to a lumberjack-rotated file, and a
// closer for the file. With an empty path it returns a no-op logger.
func New(opts Options) (*zap.Logger, io.Closer) {
	if opts.Path == "" {
		return zap.NewNop(), io.NopCloser(nil)
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 5
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = 3
	}
	w := &lumberjack.Logger{
		Filename:   filepath.Clean(opts.Path),
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}
	return NewWithWriter(w, opts.Debug), w
}

// NewWithWriter builds the same logger on top of any writer.
func NewWithWriter(w io.Writer, debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}

// Package logx builds the application's zap logger.
package logx

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the logger's level, encoding and destination.
type Options struct {
	Level   string
	Console bool      // human-readable console encoding instead of JSON
	Output  io.Writer // defaults to stderr
}

var levelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(lvl string) zapcore.Level {
	level, ok := levelMap[strings.ToLower(strings.TrimSpace(lvl))]
	if !ok {
		return zapcore.InfoLevel
	}
	return level
}

// New builds a sugared logger from opts.
func New(opts Options) *zap.SugaredLogger {
	var w zapcore.WriteSyncer
	if opts.Output != nil {
		w = zapcore.AddSync(opts.Output)
	} else {
		w = zapcore.Lock(os.Stderr)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if opts.Console {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, w, zap.NewAtomicLevelAt(ParseLevel(opts.Level)))
	return zap.New(core, zap.AddCaller()).Sugar()
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

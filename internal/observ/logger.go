// Package observ содержит логирование и замеры времени для CLI.
package observ

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// NewLogger builds the console logger used by the CLI. Entries go to stderr;
// levels are coloured when stderr is a terminal. Level "none" (or "")
// yields a no-op logger.
func NewLogger(level string) (*zap.Logger, error) {
	return newLogger(zapcore.Lock(os.Stderr), level, term.IsTerminal(int(os.Stderr.Fd())))
}

func newLogger(ws zapcore.WriteSyncer, level string, color bool) (*zap.Logger, error) {
	lvl, enabled, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return zap.NewNop(), nil
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	if color {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), ws, zap.NewAtomicLevelAt(lvl))
	return zap.New(core).Named("cssfmt"), nil
}

func parseLevel(level string) (zapcore.Level, bool, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "none", "off":
		return zapcore.InfoLevel, false, nil
	case "normal":
		return zapcore.InfoLevel, true, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return 0, false, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, true, nil
}

// OrNop возвращает l или no-op логгер, если l == nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

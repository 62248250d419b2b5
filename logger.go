package cms

import (
	"fmt"

	"go.uber.org/zap"
)

// Logger is the minimal logging surface used across packages.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// DefLogger writes to stdout. Used as a fallback when no logger is injected.
type DefLogger struct{}

func (d DefLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] CMS "+newline(format), args...)
}

func (d DefLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] CMS "+newline(format), args...)
}

func (d DefLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] CMS "+newline(format), args...)
}

func (d DefLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] CMS "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}

// ZapLogger adapts a zap sugared logger to the Logger interface.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger builds a production (or development, when debug is set)
// zap logger wrapped in the Logger interface.
func NewZapLogger(debug bool) (*ZapLogger, error) {
	var base *zap.Logger
	var err error

	if debug {
		base, err = zap.NewDevelopment()
	} else {
		base, err = zap.NewProduction()
	}

	if err != nil {
		return nil, err
	}

	return &ZapLogger{sugar: base.Sugar()}, nil
}

func (z *ZapLogger) Debug(format string, args ...any) { z.sugar.Debugf(format, args...) }
func (z *ZapLogger) Info(format string, args ...any)  { z.sugar.Infof(format, args...) }
func (z *ZapLogger) Warn(format string, args ...any)  { z.sugar.Warnf(format, args...) }
func (z *ZapLogger) Error(format string, args ...any) { z.sugar.Errorf(format, args...) }

// Sync flushes buffered log entries. Call on shutdown.
func (z *ZapLogger) Sync() error {
	return z.sugar.Sync()
}

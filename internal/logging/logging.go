// Package logging provides the shared structured logger for the module.
// Components log through the logr API; the zap backend is configured once by
// the consuming binary (or by NewTestLogger in test suites).
package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels used with logr's V().
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// Log is the package-level logger. It discards output until SetLogger or
// NewTestLogger installs a sink.
var Log logr.Logger = logr.Discard()

// SetLogger installs the given logger as the package-level logger.
func SetLogger(l logr.Logger) {
	Log = l
}

// NewLogger builds a production zap-backed logger that emits V() levels up
// to the given verbosity.
func NewLogger(verbosity int) logr.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	z, err := cfg.Build()
	if err != nil {
		return logr.Discard()
	}
	return zapr.NewLogger(z)
}

// NewTestLogger builds a development logger writing to stderr and installs
// it as the package-level logger. Intended for test suites.
func NewTestLogger() logr.Logger {
	z, err := zap.NewDevelopment()
	if err != nil {
		return logr.Discard()
	}
	l := zapr.NewLogger(z)
	Log = l
	return l
}

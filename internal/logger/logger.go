// Package logger holds the application-wide structured logger.
package logger

import (
	"go.uber.org/zap"
)

// Log is the shared logger instance. It defaults to a no-op logger so that
// packages can log safely before Init is called (and in tests).
var Log = zap.NewNop()

// Init replaces the shared logger with a real one.
func Init(production bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if production {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}

// Package xlog is the CLI-facing logger for xmlkit. The xml package itself
// never imports this package or logs anything — parsing and serialization
// report failure exclusively through returned errors (spec §6), the way a
// library is expected to behave. xlog exists for cmd/xmlkit, where a human
// is watching stderr and wants leveled, timestamped output.
package xlog

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the subset of *log.Logger that xmlkit's CLI uses.
type Logger = log.Logger

var std = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      "15:04:05",
})

// SetLevel changes the minimum level std will emit. name is one of
// "debug", "info", "warn", "error"; anything else leaves the level
// unchanged.
func SetLevel(name string) {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return
	}
	std.SetLevel(lvl)
}

// Default returns the package-wide logger, for commands that want to pass
// it down explicitly instead of calling the package-level helpers.
func Default() *log.Logger { return std }

func Debug(msg any, kv ...any) { std.Debug(msg, kv...) }
func Info(msg any, kv ...any)  { std.Info(msg, kv...) }
func Warn(msg any, kv ...any)  { std.Warn(msg, kv...) }
func Error(msg any, kv ...any) { std.Error(msg, kv...) }

// Fatal logs at error level and exits with status 1, for cmd/xmlkit's
// top-level error handling only — never called from package xml.
func Fatal(msg any, kv ...any) {
	std.Error(msg, kv...)
	os.Exit(1)
}

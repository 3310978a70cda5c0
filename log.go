package gllab

import (
	"log/slog"
	"os"
)

// labLogLevel controls the log level of the package's default logger.
// Default is LevelInfo, which suppresses Debug messages.
var labLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		labLogLevel.Set(slog.LevelDebug)
	} else {
		labLogLevel.Set(slog.LevelInfo)
	}
}

// SetLogLevel sets the default logger's level by name ("debug", "info",
// "warn", "error"). Unknown names leave the level unchanged and return false.
func SetLogLevel(name string) bool {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return false
	}
	labLogLevel.Set(lvl)
	return true
}

// Logger returns the package's default logger.
func Logger() *slog.Logger {
	return labLogger
}

var labLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: labLogLevel}))

// Package logging builds the goakt logger shared by the actor system and
// the command line tools from the logLevel config key.
package logging

import (
	"fmt"
	"io"
	"strings"

	golog "github.com/tochemey/goakt/v3/log"
)

// ParseLevel maps a logLevel config value to a goakt level.
func ParseLevel(level string) (golog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return golog.DebugLevel, nil
	case "", "info":
		return golog.InfoLevel, nil
	case "warn", "warning":
		return golog.WarningLevel, nil
	case "error":
		return golog.ErrorLevel, nil
	default:
		return golog.InvalidLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// New returns a logger writing at level to w.
func New(level string, w io.Writer) (golog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return golog.New(lvl, w), nil
}

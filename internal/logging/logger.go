// Package logging configures the structured logger.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Logger represents a logger instance
type Logger = *logrus.Logger

// Fields represents structured logging fields
type Fields = logrus.Fields

// NewLogger creates a text logger writing to w at the given level.
func NewLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	logger.SetLevel(level)
	return logger
}

// ParseLevel parses a level name such as "debug" or "warn".
func ParseLevel(s string) (logrus.Level, error) {
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.WarnLevel, fmt.Errorf("invalid log level: %s (use trace, debug, info, warn, or error)", s)
	}
	return level, nil
}

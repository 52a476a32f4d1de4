// Package logging builds the structured logger used around query runs.
package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/umairgosal/Software-Construction-lab-04/internal/config"
)

// Fields represents structured logging fields.
type Fields = logrus.Fields

// NewLogger creates a logger with the given level and format ("text" or "json").
func NewLogger(level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	logger := logrus.New()
	logger.SetLevel(lvl)

	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}

	return logger, nil
}

// FromConfig creates a logger from the log section of a profile.
func FromConfig(cfg config.LogConfig) (*logrus.Logger, error) {
	return NewLogger(cfg.Level, cfg.Format)
}

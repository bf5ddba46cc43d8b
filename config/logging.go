package config

import (
	"github.com/sirupsen/logrus"
)

// NewLogger builds the service logger from the logging configuration.
// Development environments get human-readable output regardless of the
// configured format.
func NewLogger(cfg LoggingConfig) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" && !IsDevelopment() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}

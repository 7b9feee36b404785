// Package logger configures the process-wide structured logger with
// file rotation.
package logger

import (
	"io"
	"os"

	"github.com/recruitai/backend/internal/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds a logger from config. Log files rotate by size and age;
// stdout mirroring is optional. An unknown level falls back to info.
func New(cfg config.LoggingConfig, path string) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	rotated := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	if cfg.ToStdout {
		log.SetOutput(io.MultiWriter(os.Stdout, rotated))
	} else {
		log.SetOutput(rotated)
	}

	return log
}

// Component returns an entry tagged for one subsystem.
func Component(log *logrus.Logger, name string) *logrus.Entry {
	return log.WithField("component", name)
}

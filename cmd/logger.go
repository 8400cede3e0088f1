package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "dmbook-admin"

// initLogger builds the process logger: readable console output in
// development, JSON everywhere else.
func initLogger(env, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if env == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().
			Timestamp().
			Str("service", serviceName).
			Logger()
	} else {
		logger = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Caller().
			Str("service", serviceName).
			Logger()
	}
	logger = logger.Level(lvl)
	zerolog.DefaultContextLogger = &logger
	return logger
}

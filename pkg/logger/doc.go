// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers that keep key names consistent across packages.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and attaches static attributes. Config carries LOG_LEVEL and
// LOG_FORMAT for loading through the config package; WithConfig applies it.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	v := validator.New(fields, validator.WithLogger(log))
//
// Attribute helpers (Component, Attribute, Rule, Messages, Error, ...) return
// slog.Attr values. Error returns an empty Attr for nil errors, so
//
//	log.Info("rules loaded", logger.Error(err))
//
// needs no nil check.
package logger

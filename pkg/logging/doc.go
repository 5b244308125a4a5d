// Package logging provides structured logging utilities for schedgen.
//
// It wraps the standard library slog package with defaults shared by the CLI
// and the fixture generator: JSON output to stderr, environment-based log
// level configuration (LOG_LEVEL), module/version context injection, and
// source location tracking for debug logs.
//
// Setting the default logger:
//
//	logging.SetDefaultStructuredLoggerWithLevel("schedgen", version, "info")
//	slog.Info("generation started", "environments", 7)
//
// Supported levels (case-insensitive): DEBUG, INFO (default), WARN/WARNING,
// ERROR. If LOG_LEVEL is not set and no explicit level is given, INFO is used.
package logging

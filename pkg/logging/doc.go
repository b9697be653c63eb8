// Package logging provides structured logging utilities for calcd components.
//
// # Overview
//
// This package wraps the standard library slog package with service-wide
// defaults and conventions: JSON output to stderr, environment-based log
// level configuration, module/version context injection, and source
// location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("calcd", version)
//
//	    slog.Info("processing request", "id", "req-123")
//	    slog.Error("operation failed", "error", err)
//	}
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug calcd
//
// If LOG_LEVEL is not set, defaults to INFO level.
package logging

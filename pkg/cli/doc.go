// Package cli implements the command-line interface for the calcd
// arithmetic service.
//
// # Commands
//
// serve - Run the HTTP server:
//
//	calc serve [--config FILE] [--port PORT]
//
// Starts the arithmetic API with graceful shutdown on SIGINT/SIGTERM.
// Configuration comes from defaults, an optional YAML file, and
// environment variables (PORT, LOG_LEVEL, SHUTDOWN_TIMEOUT_SECONDS).
//
// eval - Evaluate one operation locally:
//
//	calc eval --op add -a 10 -b 5 [--format json|yaml|table] [--output FILE]
//
// Runs the operation engine directly, applying the same finite-number
// validation as the API. Operands accepting "NaN" or "Inf" spellings are
// parsed but rejected by validation, mirroring server behavior.
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
package cli

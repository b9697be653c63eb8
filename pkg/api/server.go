package api

import (
	"context"
	"log/slog"

	"github.com/blakeblackwell-persefoni/calcd/pkg/logging"
	"github.com/blakeblackwell-persefoni/calcd/pkg/server"
)

const (
	name           = "calcd-api-server"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/blakeblackwell-persefoni/calcd/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	return ServeWithConfig(nil)
}

// ServeWithConfig starts the API server with an explicit configuration.
// A nil config uses the defaults (including environment overrides).
func ServeWithConfig(cfg *server.Config) error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	// WithConfig replaces the whole config, so it must run before the
	// identity options.
	var opts []server.Option
	if cfg != nil {
		opts = append(opts, server.WithConfig(cfg))
	}
	opts = append(opts,
		server.WithName(name),
		server.WithVersion(version),
	)

	s := server.New(opts...)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

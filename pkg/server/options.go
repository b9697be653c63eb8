package server

import (
	"net/http"

	"github.com/blakeblackwell-persefoni/calcd/pkg/calculator"
)

// Option defines a configuration option for the Server.
type Option func(*Server)

// WithConfig replaces the entire server configuration.
// Nil configs are ignored.
func WithConfig(cfg *Config) Option {
	return func(s *Server) {
		if cfg != nil {
			s.config = cfg
		}
	}
}

// WithName sets the server identity used in logs.
func WithName(name string) Option {
	return func(s *Server) {
		if name != "" {
			s.config.Name = name
		}
	}
}

// WithVersion sets the version reported in logs.
func WithVersion(version string) Option {
	return func(s *Server) {
		if version != "" {
			s.config.Version = version
		}
	}
}

// WithHandler registers additional routes on top of the built-in surface.
// Handlers are wrapped with the standard middleware chain.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(s *Server) {
		if s.config.Handlers == nil {
			s.config.Handlers = make(map[string]http.HandlerFunc, len(handlers))
		}
		for path, h := range handlers {
			s.config.Handlers[path] = h
		}
	}
}

// WithEngine replaces the arithmetic engine backing the operation routes.
func WithEngine(engine *calculator.Engine) Option {
	return func(s *Server) {
		if engine != nil {
			s.engine = engine
		}
	}
}

package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/blakeblackwell-persefoni/calcd/pkg/calculator"
	"github.com/blakeblackwell-persefoni/calcd/pkg/errors"
)

// setupRoutes configures all HTTP routes and middleware.
//
// Operation routes accept POST only; health and ready accept GET only.
// The method allow-list is enforced once by allowMethod before any body
// is read, and every unmatched path falls through to the JSON 404.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// Catch-all for unmatched paths
	mux.HandleFunc("/", s.handleNotFound)

	// System endpoints (no rate limiting)
	mux.HandleFunc("/health", s.allowMethod(http.MethodGet, s.handleHealth))
	mux.HandleFunc("/ready", s.allowMethod(http.MethodGet, s.handleReady))
	mux.Handle("/metrics", promhttp.Handler())

	// Operation endpoints with middleware
	mux.HandleFunc("/add",
		s.withMiddleware(s.allowMethod(http.MethodPost, s.handleOperation(calculator.OperationAdd))))
	mux.HandleFunc("/subtract",
		s.withMiddleware(s.allowMethod(http.MethodPost, s.handleOperation(calculator.OperationSubtract))))
	mux.HandleFunc("/multiply",
		s.withMiddleware(s.allowMethod(http.MethodPost, s.handleOperation(calculator.OperationMultiply))))

	// Additional caller-supplied routes
	for path, handler := range s.config.Handlers {
		mux.HandleFunc(path, s.withMiddleware(handler))
	}

	return mux
}

// allowMethod wraps a handler with a per-route method allow-list. The
// check runs before the request body is touched.
func (s *Server) allowMethod(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			s.writeError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
				msgMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// handleNotFound is the terminal fallback for unmatched paths.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, http.StatusNotFound, errors.ErrCodeNotFound, msgNotFound)
}

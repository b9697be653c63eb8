package server

import (
	"log/slog"
	"net/http"

	"github.com/blakeblackwell-persefoni/calcd/pkg/calculator"
	"github.com/blakeblackwell-persefoni/calcd/pkg/errors"
	"github.com/blakeblackwell-persefoni/calcd/pkg/serializer"
)

// Fixed user-visible error messages. These are part of the wire contract.
const (
	msgMethodNotAllowed = "Method not allowed"
	msgNotFound         = "Not found"
	msgInternalError    = "Internal server error"
	msgRateLimited      = "Rate limit exceeded"
)

// writeError emits the uniform {"error": message} envelope with the given
// status code. The error code is logged for classification but never
// exposed on the wire; neither are stack traces or causes.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.ErrorCode, message string) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)

	slog.Debug("request rejected",
		"requestID", requestID,
		"method", r.Method,
		"path", r.URL.Path,
		"status", statusCode,
		"code", code,
	)

	serializer.RespondJSON(w, statusCode, calculator.ErrorResponse{Error: message})
}

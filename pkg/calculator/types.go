package calculator

// Wire types shared by the HTTP surface and the CLI.

// OperationRequest represents a request for an arithmetic operation.
// Both operands are mandatory; pointer fields let the decoder distinguish
// an absent field from an explicit zero.
type OperationRequest struct {
	A *float64 `json:"a" yaml:"a"`
	B *float64 `json:"b" yaml:"b"`
}

// OperationResponse represents the result of an arithmetic operation.
type OperationResponse struct {
	Result float64 `json:"result" yaml:"result"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error" yaml:"error"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status string `json:"status" yaml:"status"`
}

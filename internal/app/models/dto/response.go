package dto

// SuccessResponse represents a bare success acknowledgement
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse represents the standard error body: {"error": "<message>"}
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

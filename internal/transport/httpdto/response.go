package httpdto

// MessageResponse is the single-message error (and health-adjacent) body:
// {"message": "..."}. Internal errors always use a generic message; details
// stay in the log.
type MessageResponse struct {
	Message string `json:"message"`
}

func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// FieldError carries one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the 400 body for malformed input:
// {"errors": [{"field": ..., "message": ...}]}.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// HealthResponse is the GET /api/health body.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

package model

// ErrorResponse represents an error response
type ErrorResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail represents a single validation or processing error
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SuccessResponse represents a generic success response
type SuccessResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthResponse reports the console and backend health
type HealthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	Error   string `json:"error,omitempty"`
}

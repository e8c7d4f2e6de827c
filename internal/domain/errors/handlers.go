package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "SAVE_IN_PROGRESS"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response defines the envelope returned by the error handler
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

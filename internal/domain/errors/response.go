package errors

// Response is the envelope the error middleware writes for failed requests.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "INVOICE_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

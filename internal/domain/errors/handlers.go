package errors

// Response is the unified error envelope returned by the HTTP boundary.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the business error code and detail for a failed request.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

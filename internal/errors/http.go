package errors

// statusCategory maps HTTP status codes to error categories:
// 4xx client errors (except 408/429) are irrecoverable, 5xx server errors
// and anything unexpected are recoverable.
func statusCategory(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408: // Request Timeout
			return Recoverable
		case 429: // Too Many Requests
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		return Recoverable
	}
}

// NewTransportError wraps a network-level failure with the operation that
// produced it.
func NewTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

// NewAPIError builds an APIError. message may be empty, in which case the
// generic status-code message is used.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}

package error

// APIErrorCode defines error codes for cross-cutting API errors.
type APIErrorCode string

const (
	// ErrCodeRateLimited is returned when a client exceeds the request
	// budget for an endpoint.
	ErrCodeRateLimited APIErrorCode = "API-030001"
)

package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Authentication errors
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrAuthExpired      = fmt.Errorf("access forbidden, token expired or revoked")

	// API and service errors
	ErrAPIRequest    = fmt.Errorf("API request failed")
	ErrQuotaExceeded = fmt.Errorf("rate limited or list quota exceeded")
	ErrListNotFound  = fmt.Errorf("list not found")
	ErrTitleNotFound = fmt.Errorf("title not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)

package domain

import "errors"

// Domain errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInternalError = errors.New("internal error")
)

// Validation constants
const (
	// MaxTermMonths caps loan terms at 50 years.
	MaxTermMonths = 600
)

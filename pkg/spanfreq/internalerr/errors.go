package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInputShape        = errors.New("weights and records differ in length")
	ErrDegenerateWeights = errors.New("total weight is zero")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

package service

import "errors"

// Common service errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoCandidates = errors.New("no candidate questions")
	ErrLookupFailed = errors.New("lookup failed")
)

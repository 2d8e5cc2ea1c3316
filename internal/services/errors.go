package services

import "errors"

// Sentinel errors the handlers translate into HTTP status codes.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUpstream           = errors.New("upstream text-generation failure")
)

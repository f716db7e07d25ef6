package services

import "errors"

// Domain error taxonomy. Controllers map these onto HTTP statuses; services
// wrap datastore failures with %w so callers can still match the sentinel.
var (
	ErrUnauthorized     = errors.New("missing or invalid credentials")
	ErrValidation       = errors.New("invalid input")
	ErrDuplicateRequest = errors.New("a pending request already exists for this user")
	ErrRateLimited      = errors.New("rate limit exceeded")
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("not allowed to act on this request")
)

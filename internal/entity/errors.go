package entity

import "errors"

// Validation errors, mapped to 400 by the handlers.
var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidRange    = errors.New("startDate must be after the endDate")
	ErrInvalidLimit    = errors.New("limit must be at least 1")
)

// Not-found errors, mapped to 404.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrActivitiesNotFound = errors.New("activities not found")
	ErrDomainsNotFound    = errors.New("domains not found")
)

// ErrStoreUnavailable wraps database failures so handlers can answer
// with a retryable 503 instead of a generic 500.
var ErrStoreUnavailable = errors.New("store unavailable")

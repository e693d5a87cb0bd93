package entity

import "errors"

var (
	// ErrStoreNotConfigured is returned when the key-value store credentials are missing.
	// It is not recoverable by retrying.
	ErrStoreNotConfigured = errors.New("engagement store not configured")

	// ErrStoreUnavailable wraps network, timeout and service failures of the key-value store.
	ErrStoreUnavailable = errors.New("engagement store unavailable")

	// ErrMalformedRecord is returned when a stored value cannot be decoded.
	ErrMalformedRecord = errors.New("malformed engagement record")

	// ErrInvalidComment is returned for empty or over-long comment text.
	ErrInvalidComment = errors.New("invalid comment")

	// ErrInvalidSlug is returned for slugs that are empty, too long or not URL-safe.
	ErrInvalidSlug = errors.New("invalid post slug")
)

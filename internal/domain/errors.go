package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for content and request failures.
var (
	ErrInvalidContent = errors.New("invalid portfolio content")
	ErrUnknownIcon    = errors.New("unknown icon kind")
	ErrUnknownSection = errors.New("unknown page section")
)

package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a malformed content sample. It is the only error
	// kind surfaced to the caller; everything else is recovered locally.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured marks a completion capability that was never set up.
	ErrNotConfigured = errors.New("completion capability not configured")

	// ErrCompletionUnavailable marks an unreachable or timed-out completion
	// capability. Indistinguishable from any other completion failure to the
	// caller: both trigger the deterministic fallback path.
	ErrCompletionUnavailable = errors.New("completion unavailable")

	// ErrCompletionMalformed marks a completion response that did not conform
	// to the expected schema. Never a partial success.
	ErrCompletionMalformed = errors.New("malformed completion response")

	ErrTemporary = errors.New("temporary failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}

// IsCompletionFailure reports whether err is any of the locally recoverable
// completion failure kinds.
func IsCompletionFailure(err error) bool {
	return errors.Is(err, ErrCompletionUnavailable) ||
		errors.Is(err, ErrCompletionMalformed) ||
		errors.Is(err, ErrNotConfigured)
}

package accessrequest

import "errors"

var (
	// ErrMissingJustification is returned when a request is created with an
	// empty justification after trimming.
	ErrMissingJustification = errors.New("justification is required")

	// ErrAlreadyReviewed is returned when a review is attempted on a request
	// that has already left the pending state. Re-review is rejected rather
	// than silently accepted; an accepted re-approval could double-grant
	// entitlements.
	ErrAlreadyReviewed = errors.New("request already reviewed")
)

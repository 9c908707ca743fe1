package services

import "errors"

// Error taxonomy for the review pipeline. Controllers translate these to
// HTTP statuses; services never leak raw gorm errors for these cases.
var (
	// ErrIdentityRequired is returned when an operation needs an identity
	// and the request carried neither a user nor a submitter token.
	ErrIdentityRequired = errors.New("identity required")

	// ErrInvalidIdentityToken is returned for a malformed submitter token.
	// Malformed tokens are rejected, never silently ignored.
	ErrInvalidIdentityToken = errors.New("invalid submitter token")

	// ErrAccessDenied covers both "not found" and "not yours" on
	// owner-scoped paths, so callers cannot probe for existence.
	ErrAccessDenied = errors.New("access denied")

	// ErrNotFound is used on admin paths only, where existence is not a
	// secret.
	ErrNotFound = errors.New("not found")

	// ErrInvalidStateForDelete is returned when an owner delete is
	// attempted outside the legal status set.
	ErrInvalidStateForDelete = errors.New("submission cannot be deleted in its current status")

	// ErrAlreadyDeleted is returned when the owner deletes an entity that
	// is already deleted_by_user.
	ErrAlreadyDeleted = errors.New("already deleted")

	// ErrAlreadyPromoted is returned by the promotion engine when the
	// re-accept policy is "reject" and a creator already exists for the
	// submission.
	ErrAlreadyPromoted = errors.New("submission already promoted")
)

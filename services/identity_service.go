package services

import (
	"github.com/google/uuid"
)

// Identity kinds.
const (
	IdentityUser      = "user"
	IdentityAnonymous = "anonymous"
)

// Identity is the single caller identity resolved for a request: either an
// authenticated user or an anonymous submitter token, never both. The zero
// value means "no identity".
type Identity struct {
	Kind           string
	UserID         int
	SubmitterToken string
}

// IsZero reports whether no identity was resolved.
func (i Identity) IsZero() bool {
	return i.Kind == ""
}

// IsUser reports whether the identity is an authenticated user.
func (i Identity) IsUser() bool {
	return i.Kind == IdentityUser
}

// IsAnonymous reports whether the identity is an anonymous submitter.
func (i Identity) IsAnonymous() bool {
	return i.Kind == IdentityAnonymous
}

// UserIdentity builds an authenticated identity.
func UserIdentity(userID int) Identity {
	return Identity{Kind: IdentityUser, UserID: userID}
}

// AnonymousIdentity builds an anonymous identity from an already validated
// submitter token.
func AnonymousIdentity(token string) Identity {
	return Identity{Kind: IdentityAnonymous, SubmitterToken: token}
}

// GenerateSubmitterID issues a fresh random submitter token for anonymous
// visitors. Tokens are opaque UUIDv4 strings; collisions are not a concern
// at that entropy.
func GenerateSubmitterID() string {
	return uuid.NewString()
}

// ValidSubmitterToken reports whether a client-supplied token has the
// issued format. Anything else is rejected up front with
// ErrInvalidIdentityToken by the caller.
func ValidSubmitterToken(token string) bool {
	if token == "" {
		return false
	}
	parsed, err := uuid.Parse(token)
	if err != nil {
		return false
	}
	// uuid.Parse accepts several encodings; only the canonical 36-char
	// form is ever issued.
	return parsed.String() == token
}

// ResolveIdentity applies the precedence rule: an authenticated user always
// wins and any accompanying submitter token is ignored, never merged,
// never compared. A malformed token only matters when it would actually be
// used.
func ResolveIdentity(userID *int, submitterToken string) (Identity, error) {
	if userID != nil {
		return UserIdentity(*userID), nil
	}
	if submitterToken == "" {
		return Identity{}, nil
	}
	if !ValidSubmitterToken(submitterToken) {
		return Identity{}, ErrInvalidIdentityToken
	}
	return AnonymousIdentity(submitterToken), nil
}

// RequireIdentity is ResolveIdentity for operations that cannot proceed
// without a caller identity.
func RequireIdentity(userID *int, submitterToken string) (Identity, error) {
	identity, err := ResolveIdentity(userID, submitterToken)
	if err != nil {
		return Identity{}, err
	}
	if identity.IsZero() {
		return Identity{}, ErrIdentityRequired
	}
	return identity, nil
}

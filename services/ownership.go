package services

// OwnedEntity is anything carrying the user-XOR-token owner columns.
// Submissions and proofs both satisfy it.
type OwnedEntity interface {
	OwnerUserID() *int
	OwnerSubmitterToken() *string
}

// CanAccess decides whether an identity owns an entity. Exactly two grants
// exist: a user identity matching the owner user id, or an anonymous
// identity matching the owner submitter token. Admin review goes through
// the ForAdmin operations instead and never calls this.
//
// A nil entity yields false, the same answer as a foreign entity, so
// callers cannot tell "not found" from "not yours".
func CanAccess(entity OwnedEntity, identity Identity) bool {
	if entity == nil || identity.IsZero() {
		return false
	}
	switch identity.Kind {
	case IdentityUser:
		owner := entity.OwnerUserID()
		return owner != nil && *owner == identity.UserID
	case IdentityAnonymous:
		token := entity.OwnerSubmitterToken()
		return token != nil && *token == identity.SubmitterToken
	}
	return false
}

// OwnerScope returns the WHERE clause and argument that restrict a query to
// entities owned by the identity. An authenticated user never sees rows
// created anonymously, even with a token from the same browser: identities
// are never merged.
func OwnerScope(identity Identity) (string, interface{}, error) {
	switch identity.Kind {
	case IdentityUser:
		return "user_id = ?", identity.UserID, nil
	case IdentityAnonymous:
		return "submitter_token = ?", identity.SubmitterToken, nil
	}
	return "", nil, ErrIdentityRequired
}

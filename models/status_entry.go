package models

import "time"

// Review statuses recorded in the ledger for submissions and proofs.
const (
	StatusSubmitted     = "submitted"
	StatusInReview      = "in_review"
	StatusAccepted      = "accepted"
	StatusDeclined      = "declined"
	StatusDeletedByUser = "deleted_by_user"
)

// Catalog lifecycle statuses for published creators. These live in the same
// ledger table but describe the public entry, not a review.
const (
	CatalogStatusActive   = "active"
	CatalogStatusInactive = "inactive"
	CatalogStatusPending  = "pending"
)

// Entity types a StatusEntry can refer to.
const (
	EntityCreatorSubmission = "creator_submission"
	EntityProofSubmission   = "proof_submission"
	EntityCreator           = "creator"
)

// StatusEntry is one row of the append-only status ledger. Entries are never
// updated or deleted; the current status of an entity is always derived from
// the newest entry, never stored elsewhere.
type StatusEntry struct {
	EntryID    int       `gorm:"primaryKey;column:entry_id" json:"entry_id"`
	EntityType string    `gorm:"column:entity_type;index:idx_status_entity" json:"entity_type"`
	EntityID   int       `gorm:"column:entity_id;index:idx_status_entity" json:"entity_id"`
	Status     string    `gorm:"column:status" json:"status"`
	ReviewerID *int      `gorm:"column:reviewer_id" json:"reviewer_id"`
	Comment    *string   `gorm:"column:comment" json:"comment"`
	RecordedAt time.Time `gorm:"column:recorded_at" json:"recorded_at"`

	Reviewer *User `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}

// TableName specifies the table for StatusEntry.
func (StatusEntry) TableName() string {
	return "status_entries"
}

package models

import "time"

// ProofSubmission is a piece of supporting evidence (link, image or
// localized description) attached to exactly one parent: either a
// CreatorSubmission under review or a published Creator, never both.
// Like submissions it carries its own owner identity and its own ledger.
type ProofSubmission struct {
	ProofID             int           `gorm:"primaryKey;column:proof_id" json:"proof_id"`
	CreatorSubmissionID *int          `gorm:"column:creator_submission_id" json:"creator_submission_id,omitempty"`
	CreatorID           *int          `gorm:"column:creator_id" json:"creator_id,omitempty"`
	URL                 *string       `gorm:"column:url" json:"url,omitempty"`
	ImageURL            *string       `gorm:"column:image_url" json:"image_url,omitempty"`
	Description         LocalizedText `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	UserID              *int          `gorm:"column:user_id" json:"user_id,omitempty"`
	SubmitterToken      *string       `gorm:"column:submitter_token" json:"-"`
	CreatedAt           time.Time     `gorm:"column:created_at" json:"created_at"`
	UpdatedAt           time.Time     `gorm:"column:updated_at" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table for ProofSubmission.
func (ProofSubmission) TableName() string {
	return "proof_submissions"
}

// OwnerUserID implements the owned-entity contract for the ownership guard.
func (p *ProofSubmission) OwnerUserID() *int {
	return p.UserID
}

// OwnerSubmitterToken implements the owned-entity contract for the
// ownership guard.
func (p *ProofSubmission) OwnerSubmitterToken() *string {
	return p.SubmitterToken
}

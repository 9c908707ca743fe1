package models

import "time"

// CreatorSubmission is a proposed directory entry awaiting review. It is
// owned by exactly one identity: UserID for authenticated visitors,
// SubmitterToken for anonymous ones, never both and never neither. Ownership
// is fixed at creation and never reassigned.
type CreatorSubmission struct {
	SubmissionID   int           `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	Name           string        `gorm:"column:name" json:"name"`
	Description    LocalizedText `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	WebsiteURL     *string       `gorm:"column:website_url" json:"website_url,omitempty"`
	AvatarPath     *string       `gorm:"column:avatar_path" json:"avatar_path,omitempty"`
	BannerPath     *string       `gorm:"column:banner_path" json:"banner_path,omitempty"`
	CategoryID     *int          `gorm:"column:category_id" json:"category_id,omitempty"`
	RatioID        *int          `gorm:"column:ratio_id" json:"ratio_id,omitempty"`
	UserID         *int          `gorm:"column:user_id" json:"user_id,omitempty"`
	SubmitterToken *string       `gorm:"column:submitter_token" json:"-"`
	CreatedAt      time.Time     `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"column:updated_at" json:"updated_at"`

	// Relations
	User      *User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Category  *Category         `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Ratio     *Ratio            `gorm:"foreignKey:RatioID" json:"ratio,omitempty"`
	Tags      []Tag             `gorm:"many2many:creator_submission_tags;joinForeignKey:SubmissionID;joinReferences:TagID" json:"tags,omitempty"`
	Platforms []Platform        `gorm:"many2many:creator_submission_platforms;joinForeignKey:SubmissionID;joinReferences:PlatformID" json:"platforms,omitempty"`
	Proofs    []ProofSubmission `gorm:"foreignKey:CreatorSubmissionID" json:"proofs,omitempty"`
}

// TableName specifies the table for CreatorSubmission.
func (CreatorSubmission) TableName() string {
	return "creator_submissions"
}

// OwnerUserID implements the owned-entity contract for the ownership guard.
func (s *CreatorSubmission) OwnerUserID() *int {
	return s.UserID
}

// OwnerSubmitterToken implements the owned-entity contract for the
// ownership guard.
func (s *CreatorSubmission) OwnerSubmitterToken() *string {
	return s.SubmitterToken
}

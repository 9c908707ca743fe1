package models

import "time"

// Creator is a published directory entry materialized from an accepted
// CreatorSubmission. Creators carry no owner identity and no review ledger
// of their own; they are staff-owned artifacts with audit fields plus a
// catalog-level ledger (active/inactive/pending) that is unrelated to
// submission review.
type Creator struct {
	CreatorID          int           `gorm:"primaryKey;column:creator_id" json:"creator_id"`
	Name               string        `gorm:"column:name" json:"name"`
	Description        LocalizedText `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	WebsiteURL         *string       `gorm:"column:website_url" json:"website_url,omitempty"`
	AvatarPath         *string       `gorm:"column:avatar_path" json:"avatar_path,omitempty"`
	BannerPath         *string       `gorm:"column:banner_path" json:"banner_path,omitempty"`
	CategoryID         *int          `gorm:"column:category_id" json:"category_id,omitempty"`
	RatioID            *int          `gorm:"column:ratio_id" json:"ratio_id,omitempty"`
	CreatedByID        *int          `gorm:"column:created_by_id" json:"created_by_id,omitempty"`
	PublishedByID      *int          `gorm:"column:published_by_id" json:"published_by_id,omitempty"`
	SourceSubmissionID *int          `gorm:"column:source_submission_id" json:"source_submission_id,omitempty"`
	CreatedAt          time.Time     `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time     `gorm:"column:updated_at" json:"updated_at"`

	// Relations
	Category  *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Ratio     *Ratio         `gorm:"foreignKey:RatioID" json:"ratio,omitempty"`
	Tags      []Tag          `gorm:"many2many:creator_tags;joinForeignKey:CreatorID;joinReferences:TagID" json:"tags,omitempty"`
	Platforms []Platform     `gorm:"many2many:creator_platforms;joinForeignKey:CreatorID;joinReferences:PlatformID" json:"platforms,omitempty"`
	Proofs    []CreatorProof `gorm:"foreignKey:CreatorID" json:"proofs,omitempty"`
}

// CreatorProof is published evidence under a Creator. URL and ImageURL are
// stored as plain strings (empty rather than NULL) so the dedup index
// treats missing values as equal; MySQL unique indexes ignore NULLs.
type CreatorProof struct {
	ProofID     int           `gorm:"primaryKey;column:proof_id" json:"proof_id"`
	CreatorID   int           `gorm:"column:creator_id;uniqueIndex:idx_creator_proof_dedup" json:"creator_id"`
	URL         string        `gorm:"column:url;size:500;uniqueIndex:idx_creator_proof_dedup" json:"url"`
	ImageURL    string        `gorm:"column:image_url;size:500;uniqueIndex:idx_creator_proof_dedup" json:"image_url"`
	Description LocalizedText `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	CreatedByID *int          `gorm:"column:created_by_id" json:"created_by_id,omitempty"`
	CreatedAt   time.Time     `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides
func (Creator) TableName() string {
	return "creators"
}

func (CreatorProof) TableName() string {
	return "creator_proofs"
}

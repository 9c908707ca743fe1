package models

import "time"

// Classification registries referenced by submissions and creators. The
// review core treats these ids as opaque; referential integrity is enforced
// by the CRUD layer that manages the registries.

type Category struct {
	CategoryID   int        `gorm:"primaryKey;column:category_id" json:"category_id"`
	CategoryName string     `gorm:"column:category_name" json:"category_name"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt    *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
}

type Ratio struct {
	RatioID   int       `gorm:"primaryKey;column:ratio_id" json:"ratio_id"`
	RatioName string    `gorm:"column:ratio_name" json:"ratio_name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

type Tag struct {
	TagID   int    `gorm:"primaryKey;column:tag_id" json:"tag_id"`
	TagName string `gorm:"column:tag_name" json:"tag_name"`
}

type Platform struct {
	PlatformID   int    `gorm:"primaryKey;column:platform_id" json:"platform_id"`
	PlatformName string `gorm:"column:platform_name" json:"platform_name"`
}

// TableName overrides
func (Category) TableName() string {
	return "categories"
}

func (Ratio) TableName() string {
	return "ratios"
}

func (Tag) TableName() string {
	return "tags"
}

func (Platform) TableName() string {
	return "platforms"
}

package services

import (
	"errors"
	"fmt"

	"creator-directory-api/models"
	"creator-directory-api/utils"

	"gorm.io/gorm"
)

// SubmissionPayload carries the content fields of a creator submission.
// Classification ids are opaque here; the CRUD layer managing the
// registries validated them before they reach the review core.
type SubmissionPayload struct {
	Name        string               `json:"name" binding:"required"`
	Description models.LocalizedText `json:"description"`
	WebsiteURL  *string              `json:"website_url"`
	AvatarPath  *string              `json:"avatar_path"`
	BannerPath  *string              `json:"banner_path"`
	CategoryID  *int                 `json:"category_id"`
	RatioID     *int                 `json:"ratio_id"`
	TagIDs      []int                `json:"tag_ids"`
	PlatformIDs []int                `json:"platform_ids"`
}

// SubmissionUpdate is a partial update; nil fields are left untouched.
type SubmissionUpdate struct {
	Name        *string               `json:"name"`
	Description *models.LocalizedText `json:"description"`
	WebsiteURL  *string               `json:"website_url"`
	AvatarPath  *string               `json:"avatar_path"`
	BannerPath  *string               `json:"banner_path"`
	CategoryID  *int                  `json:"category_id"`
	RatioID     *int                  `json:"ratio_id"`
	TagIDs      []int                 `json:"tag_ids"`
	PlatformIDs []int                 `json:"platform_ids"`
}

// SubmissionService is the store for creator submissions. Owner-scoped
// operations go through the ownership guard; ForAdmin operations bypass it
// and are only reachable from staff-authorized routes.
type SubmissionService struct {
	db       *gorm.DB
	statuses *StatusService
}

// NewSubmissionService creates a SubmissionService.
func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{db: db, statuses: NewStatusService(db)}
}

// Statuses exposes the ledger service bound to the same database.
func (s *SubmissionService) Statuses() *StatusService {
	return s.statuses
}

// Create persists a new submission owned by the identity and records the
// initial submitted ledger entry in the same transaction. Ownership is
// user XOR submitter token, fixed here for the lifetime of the row.
func (s *SubmissionService) Create(payload SubmissionPayload, identity Identity) (*models.CreatorSubmission, error) {
	if identity.IsZero() {
		return nil, ErrIdentityRequired
	}

	submission := models.CreatorSubmission{
		Name:        utils.SanitizeInput(payload.Name),
		Description: payload.Description,
		WebsiteURL:  payload.WebsiteURL,
		AvatarPath:  payload.AvatarPath,
		BannerPath:  payload.BannerPath,
		CategoryID:  payload.CategoryID,
		RatioID:     payload.RatioID,
	}
	switch identity.Kind {
	case IdentityUser:
		id := identity.UserID
		submission.UserID = &id
	case IdentityAnonymous:
		token := identity.SubmitterToken
		submission.SubmitterToken = &token
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&submission).Error; err != nil {
			return fmt.Errorf("failed to create submission: %w", err)
		}
		if err := replaceSubmissionAssociations(tx, &submission, payload.TagIDs, payload.PlatformIDs); err != nil {
			return err
		}
		return NewStatusService(tx).RecordInitial(models.EntityCreatorSubmission, submission.SubmissionID)
	})
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// GetOwned loads a submission for its owner. Missing and foreign rows get
// the same ErrAccessDenied.
func (s *SubmissionService) GetOwned(id int, identity Identity) (*models.CreatorSubmission, error) {
	if identity.IsZero() {
		return nil, ErrIdentityRequired
	}
	submission, err := s.load(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrAccessDenied
		}
		return nil, err
	}
	if !CanAccess(submission, identity) {
		return nil, ErrAccessDenied
	}
	return submission, nil
}

// ListOwned returns the identity's own submissions, newest first. A logged
// in user only ever sees rows created while logged in; anonymous history is
// not merged.
func (s *SubmissionService) ListOwned(identity Identity) ([]models.CreatorSubmission, error) {
	clause, arg, err := OwnerScope(identity)
	if err != nil {
		return nil, err
	}
	var submissions []models.CreatorSubmission
	err = s.db.
		Preload("Tags").
		Preload("Platforms").
		Where(clause, arg).
		Order("created_at DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}

// UpdateOwned applies a partial update to an owned submission. Edits made
// while the submission sits in review are deliberately allowed; promotion
// reads the payload at acceptance time, not creation time.
func (s *SubmissionService) UpdateOwned(id int, update SubmissionUpdate, identity Identity) (*models.CreatorSubmission, error) {
	submission, err := s.GetOwned(id, identity)
	if err != nil {
		return nil, err
	}
	return s.applyUpdate(submission, update)
}

// SoftDeleteOwned records deleted_by_user in the ledger for an owned
// submission. The row stays; only staff can physically delete.
func (s *SubmissionService) SoftDeleteOwned(id int, identity Identity) error {
	if _, err := s.GetOwned(id, identity); err != nil {
		return err
	}
	return s.statuses.DeleteByOwner(models.EntityCreatorSubmission, id)
}

// ListAllForAdmin returns every submission regardless of owner.
func (s *SubmissionService) ListAllForAdmin() ([]models.CreatorSubmission, error) {
	var submissions []models.CreatorSubmission
	err := s.db.
		Preload("User").
		Preload("Tags").
		Preload("Platforms").
		Order("created_at DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}

// GetForAdmin loads any submission by id. Staff paths are not
// ownership-scoped, so a missing row is a plain ErrNotFound.
func (s *SubmissionService) GetForAdmin(id int) (*models.CreatorSubmission, error) {
	return s.load(id)
}

// UpdateForAdmin applies a partial update without an ownership check.
func (s *SubmissionService) UpdateForAdmin(id int, update SubmissionUpdate) (*models.CreatorSubmission, error) {
	submission, err := s.load(id)
	if err != nil {
		return nil, err
	}
	return s.applyUpdate(submission, update)
}

// DeleteForAdmin physically removes a submission, its attached proofs and
// their ledgers. This is the only destructive operation in the pipeline and
// it bypasses the ledger by design.
func (s *SubmissionService) DeleteForAdmin(id int) error {
	submission, err := s.load(id)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var proofIDs []int
		if err := tx.Model(&models.ProofSubmission{}).
			Where("creator_submission_id = ?", id).
			Pluck("proof_id", &proofIDs).Error; err != nil {
			return fmt.Errorf("failed to collect proof ids: %w", err)
		}
		if len(proofIDs) > 0 {
			if err := tx.Where("entity_type = ? AND entity_id IN ?", models.EntityProofSubmission, proofIDs).
				Delete(&models.StatusEntry{}).Error; err != nil {
				return fmt.Errorf("failed to delete proof ledgers: %w", err)
			}
			if err := tx.Where("creator_submission_id = ?", id).
				Delete(&models.ProofSubmission{}).Error; err != nil {
				return fmt.Errorf("failed to delete proofs: %w", err)
			}
		}
		if err := tx.Where("entity_type = ? AND entity_id = ?", models.EntityCreatorSubmission, id).
			Delete(&models.StatusEntry{}).Error; err != nil {
			return fmt.Errorf("failed to delete submission ledger: %w", err)
		}
		if err := tx.Select("Tags", "Platforms").Delete(submission).Error; err != nil {
			return fmt.Errorf("failed to delete submission: %w", err)
		}
		return nil
	})
}

func (s *SubmissionService) load(id int) (*models.CreatorSubmission, error) {
	var submission models.CreatorSubmission
	err := s.db.
		Preload("User").
		Preload("Tags").
		Preload("Platforms").
		Preload("Proofs").
		Where("submission_id = ?", id).
		First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}
	return &submission, nil
}

func (s *SubmissionService) applyUpdate(submission *models.CreatorSubmission, update SubmissionUpdate) (*models.CreatorSubmission, error) {
	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = utils.SanitizeInput(*update.Name)
	}
	if update.Description != nil {
		updates["description_en"] = update.Description.En
		updates["description_de"] = update.Description.De
		updates["description_ja"] = update.Description.Ja
	}
	if update.WebsiteURL != nil {
		updates["website_url"] = *update.WebsiteURL
	}
	if update.AvatarPath != nil {
		updates["avatar_path"] = *update.AvatarPath
	}
	if update.BannerPath != nil {
		updates["banner_path"] = *update.BannerPath
	}
	if update.CategoryID != nil {
		updates["category_id"] = *update.CategoryID
	}
	if update.RatioID != nil {
		updates["ratio_id"] = *update.RatioID
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(submission).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update submission: %w", err)
			}
		}
		return replaceSubmissionAssociations(tx, submission, update.TagIDs, update.PlatformIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.load(submission.SubmissionID)
}

// replaceSubmissionAssociations swaps the m2m classification references.
// Nil slices mean "leave as is"; empty slices clear.
func replaceSubmissionAssociations(tx *gorm.DB, submission *models.CreatorSubmission, tagIDs, platformIDs []int) error {
	if tagIDs != nil {
		tags := make([]models.Tag, 0, len(tagIDs))
		for _, id := range tagIDs {
			tags = append(tags, models.Tag{TagID: id})
		}
		if err := tx.Model(submission).Association("Tags").Replace(tags); err != nil {
			return fmt.Errorf("failed to set tags: %w", err)
		}
	}
	if platformIDs != nil {
		platforms := make([]models.Platform, 0, len(platformIDs))
		for _, id := range platformIDs {
			platforms = append(platforms, models.Platform{PlatformID: id})
		}
		if err := tx.Model(submission).Association("Platforms").Replace(platforms); err != nil {
			return fmt.Errorf("failed to set platforms: %w", err)
		}
	}
	return nil
}

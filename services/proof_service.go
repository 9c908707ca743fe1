package services

import (
	"errors"
	"fmt"

	"creator-directory-api/models"

	"gorm.io/gorm"
)

// ProofPayload carries the content of a proof submission plus its parent
// reference. Exactly one of CreatorSubmissionID and CreatorID must be set:
// evidence either supports a submission under review or an already
// published creator.
type ProofPayload struct {
	CreatorSubmissionID *int                 `json:"creator_submission_id"`
	CreatorID           *int                 `json:"creator_id"`
	URL                 *string              `json:"url"`
	ImageURL            *string              `json:"image_url"`
	Description         models.LocalizedText `json:"description"`
}

// ProofUpdate is a partial update; nil fields are left untouched. The
// parent reference is fixed at creation and cannot be moved.
type ProofUpdate struct {
	URL         *string               `json:"url"`
	ImageURL    *string               `json:"image_url"`
	Description *models.LocalizedText `json:"description"`
}

// ProofService is the evidence store. Each proof has its own owner and its
// own ledger, independent of its parent.
type ProofService struct {
	db          *gorm.DB
	statuses    *StatusService
	submissions *SubmissionService
}

// NewProofService creates a ProofService.
func NewProofService(db *gorm.DB) *ProofService {
	return &ProofService{
		db:          db,
		statuses:    NewStatusService(db),
		submissions: NewSubmissionService(db),
	}
}

// Statuses exposes the ledger service bound to the same database.
func (s *ProofService) Statuses() *StatusService {
	return s.statuses
}

// Create persists a new proof owned by the identity, with its initial
// submitted ledger entry. Attaching to a submission requires owning that
// submission; attaching to a published creator only requires the creator to
// exist, since catalog entries are public.
func (s *ProofService) Create(payload ProofPayload, identity Identity) (*models.ProofSubmission, error) {
	if identity.IsZero() {
		return nil, ErrIdentityRequired
	}
	if (payload.CreatorSubmissionID == nil) == (payload.CreatorID == nil) {
		return nil, fmt.Errorf("proof must reference exactly one of a submission or a creator")
	}
	if payload.URL == nil && payload.ImageURL == nil && payload.Description.IsEmpty() {
		return nil, fmt.Errorf("proof needs a url, an image or a description")
	}

	if payload.CreatorSubmissionID != nil {
		if _, err := s.submissions.GetOwned(*payload.CreatorSubmissionID, identity); err != nil {
			return nil, err
		}
	} else {
		var count int64
		if err := s.db.Model(&models.Creator{}).
			Where("creator_id = ?", *payload.CreatorID).
			Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check creator: %w", err)
		}
		if count == 0 {
			return nil, ErrNotFound
		}
	}

	proof := models.ProofSubmission{
		CreatorSubmissionID: payload.CreatorSubmissionID,
		CreatorID:           payload.CreatorID,
		URL:                 payload.URL,
		ImageURL:            payload.ImageURL,
		Description:         payload.Description,
	}
	switch identity.Kind {
	case IdentityUser:
		id := identity.UserID
		proof.UserID = &id
	case IdentityAnonymous:
		token := identity.SubmitterToken
		proof.SubmitterToken = &token
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&proof).Error; err != nil {
			return fmt.Errorf("failed to create proof: %w", err)
		}
		return NewStatusService(tx).RecordInitial(models.EntityProofSubmission, proof.ProofID)
	})
	if err != nil {
		return nil, err
	}
	return &proof, nil
}

// GetOwned loads a proof for its owner, with the uniform denial for missing
// and foreign rows.
func (s *ProofService) GetOwned(id int, identity Identity) (*models.ProofSubmission, error) {
	if identity.IsZero() {
		return nil, ErrIdentityRequired
	}
	proof, err := s.load(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrAccessDenied
		}
		return nil, err
	}
	if !CanAccess(proof, identity) {
		return nil, ErrAccessDenied
	}
	return proof, nil
}

// ListOwned returns the identity's own proofs, newest first.
func (s *ProofService) ListOwned(identity Identity) ([]models.ProofSubmission, error) {
	clause, arg, err := OwnerScope(identity)
	if err != nil {
		return nil, err
	}
	var proofs []models.ProofSubmission
	err = s.db.
		Where(clause, arg).
		Order("created_at DESC").
		Find(&proofs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list proofs: %w", err)
	}
	return proofs, nil
}

// UpdateOwned applies a partial update to an owned proof.
func (s *ProofService) UpdateOwned(id int, update ProofUpdate, identity Identity) (*models.ProofSubmission, error) {
	proof, err := s.GetOwned(id, identity)
	if err != nil {
		return nil, err
	}
	return s.applyUpdate(proof, update)
}

// SoftDeleteOwned records deleted_by_user in the proof's ledger.
func (s *ProofService) SoftDeleteOwned(id int, identity Identity) error {
	if _, err := s.GetOwned(id, identity); err != nil {
		return err
	}
	return s.statuses.DeleteByOwner(models.EntityProofSubmission, id)
}

// ListAllForAdmin returns every proof regardless of owner.
func (s *ProofService) ListAllForAdmin() ([]models.ProofSubmission, error) {
	var proofs []models.ProofSubmission
	err := s.db.
		Preload("User").
		Order("created_at DESC").
		Find(&proofs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list proofs: %w", err)
	}
	return proofs, nil
}

// GetForAdmin loads any proof by id.
func (s *ProofService) GetForAdmin(id int) (*models.ProofSubmission, error) {
	return s.load(id)
}

// UpdateForAdmin applies a partial update without an ownership check.
func (s *ProofService) UpdateForAdmin(id int, update ProofUpdate) (*models.ProofSubmission, error) {
	proof, err := s.load(id)
	if err != nil {
		return nil, err
	}
	return s.applyUpdate(proof, update)
}

// DeleteForAdmin physically removes a proof and its ledger.
func (s *ProofService) DeleteForAdmin(id int) error {
	proof, err := s.load(id)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entity_type = ? AND entity_id = ?", models.EntityProofSubmission, id).
			Delete(&models.StatusEntry{}).Error; err != nil {
			return fmt.Errorf("failed to delete proof ledger: %w", err)
		}
		if err := tx.Delete(proof).Error; err != nil {
			return fmt.Errorf("failed to delete proof: %w", err)
		}
		return nil
	})
}

func (s *ProofService) load(id int) (*models.ProofSubmission, error) {
	var proof models.ProofSubmission
	err := s.db.
		Where("proof_id = ?", id).
		First(&proof).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load proof: %w", err)
	}
	return &proof, nil
}

func (s *ProofService) applyUpdate(proof *models.ProofSubmission, update ProofUpdate) (*models.ProofSubmission, error) {
	updates := map[string]interface{}{}
	if update.URL != nil {
		updates["url"] = *update.URL
	}
	if update.ImageURL != nil {
		updates["image_url"] = *update.ImageURL
	}
	if update.Description != nil {
		updates["description_en"] = update.Description.En
		updates["description_de"] = update.Description.De
		updates["description_ja"] = update.Description.Ja
	}
	if len(updates) > 0 {
		if err := s.db.Model(proof).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update proof: %w", err)
		}
	}
	return s.load(proof.ProofID)
}

package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"creator-directory-api/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Re-accept policies. The source system materialized a second catalog entry
// when staff accepted an already-accepted submission; whether that is a
// feature or a bug is unresolved, so the behavior is configurable instead
// of silently inherited.
const (
	ReacceptDuplicate = "duplicate" // default: a second creator is created
	ReacceptReject    = "reject"    // fail with ErrAlreadyPromoted
	ReacceptSkip      = "skip"      // no-op, return the existing creator
)

// PromotionService materializes catalog entries from accepted submissions.
// Creator creation is fatal on failure; proof copying is best-effort with
// per-pair dedup, so re-running a promotion against an existing creator
// never duplicates proofs.
type PromotionService struct {
	db       *gorm.DB
	statuses *StatusService
	policy   string
}

// NewPromotionService creates a PromotionService. The re-accept policy
// comes from PROMOTION_REACCEPT_POLICY and defaults to duplicate.
func NewPromotionService(db *gorm.DB) *PromotionService {
	policy := strings.ToLower(strings.TrimSpace(os.Getenv("PROMOTION_REACCEPT_POLICY")))
	switch policy {
	case ReacceptReject, ReacceptSkip, ReacceptDuplicate:
	default:
		policy = ReacceptDuplicate
	}
	return &PromotionService{db: db, statuses: NewStatusService(db), policy: policy}
}

// WithPolicy overrides the re-accept policy. Used by tests and callers that
// need explicit behavior regardless of environment.
func (s *PromotionService) WithPolicy(policy string) *PromotionService {
	s.policy = policy
	return s
}

// PromoteOnAccept copies an accepted submission into the catalog. The
// payload is read now, at acceptance time, so edits made during review are
// included. Attached proofs whose current status is submitted or in_review
// are copied to the new creator; declined and deleted ones are excluded.
//
// The creator insert is all-or-nothing: if it fails, no catalog state is
// left behind and the error is surfaced. Individual proof copies that fail
// are logged and skipped.
func (s *PromotionService) PromoteOnAccept(submissionID int, reviewerID int) (*models.Creator, error) {
	var submission models.CreatorSubmission
	err := s.db.
		Preload("Tags").
		Preload("Platforms").
		Preload("Proofs").
		Where("submission_id = ?", submissionID).
		First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load submission for promotion: %w", err)
	}

	if s.policy != ReacceptDuplicate {
		existing, err := s.findExisting(submissionID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			if s.policy == ReacceptReject {
				return nil, ErrAlreadyPromoted
			}
			return existing, nil
		}
	}

	creator := models.Creator{
		Name:               submission.Name,
		Description:        submission.Description,
		WebsiteURL:         submission.WebsiteURL,
		AvatarPath:         submission.AvatarPath,
		BannerPath:         submission.BannerPath,
		CategoryID:         submission.CategoryID,
		RatioID:            submission.RatioID,
		CreatedByID:        submission.UserID,
		PublishedByID:      &reviewerID,
		SourceSubmissionID: &submission.SubmissionID,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&creator).Error; err != nil {
			return fmt.Errorf("failed to create creator: %w", err)
		}
		if len(submission.Tags) > 0 {
			if err := tx.Model(&creator).Association("Tags").Replace(submission.Tags); err != nil {
				return fmt.Errorf("failed to copy tags: %w", err)
			}
		}
		if len(submission.Platforms) > 0 {
			if err := tx.Model(&creator).Association("Platforms").Replace(submission.Platforms); err != nil {
				return fmt.Errorf("failed to copy platforms: %w", err)
			}
		}
		// Catalog lifecycle ledger, unrelated to review statuses.
		_, err := NewStatusService(tx).Append(models.EntityCreator, creator.CreatorID, models.CatalogStatusActive, &reviewerID, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	for i := range submission.Proofs {
		proof := &submission.Proofs[i]
		eligible, err := s.proofEligible(proof.ProofID)
		if err != nil {
			log.Printf("promotion: status check failed for proof %d: %v", proof.ProofID, err)
			continue
		}
		if !eligible {
			continue
		}
		if err := s.CopyProof(creator.CreatorID, proof, reviewerID); err != nil {
			log.Printf("promotion: failed to copy proof %d to creator %d: %v", proof.ProofID, creator.CreatorID, err)
		}
	}

	return &creator, nil
}

// PromoteProofOnAccept copies a single accepted proof that was submitted
// against an already published creator. Same dedup rule as promotion.
func (s *PromotionService) PromoteProofOnAccept(proofID int, reviewerID int) error {
	var proof models.ProofSubmission
	err := s.db.Where("proof_id = ?", proofID).First(&proof).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load proof: %w", err)
	}
	if proof.CreatorID == nil {
		// Submission-parented proofs are copied when their submission is
		// accepted, not individually.
		return nil
	}
	return s.CopyProof(*proof.CreatorID, &proof, reviewerID)
}

// CopyProof inserts one catalog proof under the creator unless one with the
// same (url, imageUrl) pair already exists. The existence check runs
// immediately before the insert and a storage uniqueness violation is
// treated as "already exists, skip", so concurrent promotions cannot race
// past each other into duplicates.
func (s *PromotionService) CopyProof(creatorID int, proof *models.ProofSubmission, reviewerID int) error {
	url := deref(proof.URL)
	imageURL := deref(proof.ImageURL)

	var count int64
	err := s.db.Model(&models.CreatorProof{}).
		Where("creator_id = ? AND url = ? AND image_url = ?", creatorID, url, imageURL).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check existing proofs: %w", err)
	}
	if count > 0 {
		return nil
	}

	catalogProof := models.CreatorProof{
		CreatorID:   creatorID,
		URL:         url,
		ImageURL:    imageURL,
		Description: proof.Description,
		CreatedByID: &reviewerID,
	}
	if err := s.db.Create(&catalogProof).Error; err != nil {
		if isDuplicateKey(err) {
			return nil
		}
		return fmt.Errorf("failed to insert creator proof: %w", err)
	}
	return nil
}

func (s *PromotionService) findExisting(submissionID int) (*models.Creator, error) {
	var creator models.Creator
	err := s.db.
		Where("source_submission_id = ?", submissionID).
		Order("creator_id DESC").
		First(&creator).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check existing creator: %w", err)
	}
	return &creator, nil
}

// proofEligible reports whether a proof's current status allows copying:
// submitted or in_review only.
func (s *PromotionService) proofEligible(proofID int) (bool, error) {
	current, err := s.statuses.CurrentStatus(models.EntityProofSubmission, proofID)
	if err != nil {
		return false, err
	}
	return ProofEligibleForPromotion(current), nil
}

// ProofEligibleForPromotion is the pure eligibility rule: declined and
// deleted_by_user evidence never reaches the catalog.
func ProofEligibleForPromotion(current string) bool {
	return current == models.StatusSubmitted || current == models.StatusInReview
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

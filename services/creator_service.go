package services

import (
	"errors"
	"fmt"

	"creator-directory-api/models"

	"gorm.io/gorm"
)

var catalogStatuses = map[string]struct{}{
	models.CatalogStatusActive:   {},
	models.CatalogStatusInactive: {},
	models.CatalogStatusPending:  {},
}

// ValidCatalogStatus reports whether a status belongs to the catalog
// lifecycle (as opposed to review statuses).
func ValidCatalogStatus(status string) bool {
	_, ok := catalogStatuses[status]
	return ok
}

// CreatorService reads the published catalog. Creators are staff-owned and
// not reviewable; their only lifecycle is the catalog ledger.
type CreatorService struct {
	db       *gorm.DB
	statuses *StatusService
}

// NewCreatorService creates a CreatorService.
func NewCreatorService(db *gorm.DB) *CreatorService {
	return &CreatorService{db: db, statuses: NewStatusService(db)}
}

// ListActive returns the publicly visible creators.
func (s *CreatorService) ListActive() ([]models.Creator, error) {
	var creators []models.Creator
	err := s.db.
		Preload("Tags").
		Preload("Platforms").
		Order("created_at DESC").
		Find(&creators).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list creators: %w", err)
	}

	visible := make([]models.Creator, 0, len(creators))
	for i := range creators {
		current, err := s.statuses.CurrentStatus(models.EntityCreator, creators[i].CreatorID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		if current == models.CatalogStatusActive {
			visible = append(visible, creators[i])
		}
	}
	return visible, nil
}

// GetActive returns one publicly visible creator with its proofs.
func (s *CreatorService) GetActive(id int) (*models.Creator, error) {
	creator, err := s.load(id)
	if err != nil {
		return nil, err
	}
	current, err := s.statuses.CurrentStatus(models.EntityCreator, id)
	if err != nil {
		return nil, err
	}
	if current != models.CatalogStatusActive {
		return nil, ErrNotFound
	}
	return creator, nil
}

// ListAllForAdmin returns every creator regardless of catalog status.
func (s *CreatorService) ListAllForAdmin() ([]models.Creator, error) {
	var creators []models.Creator
	err := s.db.
		Preload("Tags").
		Preload("Platforms").
		Preload("Proofs").
		Order("created_at DESC").
		Find(&creators).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list creators: %w", err)
	}
	return creators, nil
}

// GetForAdmin loads any creator by id.
func (s *CreatorService) GetForAdmin(id int) (*models.Creator, error) {
	return s.load(id)
}

// SetCatalogStatusAdmin appends a catalog lifecycle transition.
func (s *CreatorService) SetCatalogStatusAdmin(id int, status string, reviewerID int, comment *string) (*models.StatusEntry, error) {
	if !ValidCatalogStatus(status) {
		return nil, fmt.Errorf("unknown catalog status %q", status)
	}
	if _, err := s.load(id); err != nil {
		return nil, err
	}
	return s.statuses.Append(models.EntityCreator, id, status, &reviewerID, comment)
}

func (s *CreatorService) load(id int) (*models.Creator, error) {
	var creator models.Creator
	err := s.db.
		Preload("Tags").
		Preload("Platforms").
		Preload("Proofs").
		Where("creator_id = ?", id).
		First(&creator).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load creator: %w", err)
	}
	return &creator, nil
}

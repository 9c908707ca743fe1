package services

import (
	"errors"
	"fmt"
	"time"

	"creator-directory-api/models"

	"gorm.io/gorm"
)

// reviewStatuses are the statuses staff may set. Staff transitions are
// unrestricted in direction: review is a manual, correctable process, so a
// declined submission may legally be reopened.
var reviewStatuses = map[string]struct{}{
	models.StatusSubmitted: {},
	models.StatusInReview:  {},
	models.StatusAccepted:  {},
	models.StatusDeclined:  {},
}

// ownerDeletableStatuses are the current statuses from which the owner may
// soft-delete.
var ownerDeletableStatuses = map[string]struct{}{
	models.StatusSubmitted: {},
	models.StatusInReview:  {},
	models.StatusAccepted:  {},
	models.StatusDeclined:  {},
}

// ValidReviewStatus reports whether a status is one staff can set.
func ValidReviewStatus(status string) bool {
	_, ok := reviewStatuses[status]
	return ok
}

// LatestEntry picks the ledger entry with the greatest timestamp, breaking
// ties by the highest entry id. It tolerates out-of-order input so the
// derived status never depends on insert order.
func LatestEntry(entries []models.StatusEntry) *models.StatusEntry {
	var latest *models.StatusEntry
	for i := range entries {
		e := &entries[i]
		if latest == nil ||
			e.RecordedAt.After(latest.RecordedAt) ||
			(e.RecordedAt.Equal(latest.RecordedAt) && e.EntryID > latest.EntryID) {
			latest = e
		}
	}
	return latest
}

// CurrentStatusOf derives the current status from a slice of ledger
// entries. Empty input yields "".
func CurrentStatusOf(entries []models.StatusEntry) string {
	latest := LatestEntry(entries)
	if latest == nil {
		return ""
	}
	return latest.Status
}

// StatusService owns the append-only status ledger. The current status of
// an entity is always derived from the newest entry; nothing in the system
// stores it as a separate column, so history and "current" cannot diverge.
type StatusService struct {
	db *gorm.DB
}

// NewStatusService creates a StatusService backed by the given database.
func NewStatusService(db *gorm.DB) *StatusService {
	return &StatusService{db: db}
}

// Append records one status transition. Entries are inserts only; nothing
// ever updates or deletes a ledger row.
func (s *StatusService) Append(entityType string, entityID int, status string, reviewerID *int, comment *string) (*models.StatusEntry, error) {
	entry := models.StatusEntry{
		EntityType: entityType,
		EntityID:   entityID,
		Status:     status,
		ReviewerID: reviewerID,
		Comment:    comment,
		RecordedAt: time.Now(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to append status entry: %w", err)
	}
	return &entry, nil
}

// RecordInitial writes the creation entry every entity gets: status
// submitted, reviewer null (the system).
func (s *StatusService) RecordInitial(entityType string, entityID int) error {
	_, err := s.Append(entityType, entityID, models.StatusSubmitted, nil, nil)
	return err
}

// CurrentStatus derives the entity's status from the newest ledger entry.
func (s *StatusService) CurrentStatus(entityType string, entityID int) (string, error) {
	var entry models.StatusEntry
	err := s.db.
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("recorded_at DESC, entry_id DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read status ledger: %w", err)
	}
	return entry.Status, nil
}

// History returns the full ledger for an entity, newest first.
func (s *StatusService) History(entityType string, entityID int) ([]models.StatusEntry, error) {
	var entries []models.StatusEntry
	err := s.db.
		Preload("Reviewer").
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("recorded_at DESC, entry_id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load status history: %w", err)
	}
	return entries, nil
}

// SetStatusAdmin records a staff transition. Any review status may follow
// any other; the only validation is that the target status is a review
// status at all.
func (s *StatusService) SetStatusAdmin(entityType string, entityID int, status string, reviewerID int, comment *string) (*models.StatusEntry, error) {
	if !ValidReviewStatus(status) {
		return nil, fmt.Errorf("unknown review status %q", status)
	}
	return s.Append(entityType, entityID, status, &reviewerID, comment)
}

// DeleteByOwner records the owner-initiated soft delete. Legal only while
// the current status is submitted, in_review, accepted or declined; a
// repeat delete fails with ErrAlreadyDeleted and anything else with
// ErrInvalidStateForDelete. The entity row itself is untouched; staff can
// still see and even reopen it.
func (s *StatusService) DeleteByOwner(entityType string, entityID int) error {
	current, err := s.CurrentStatus(entityType, entityID)
	if err != nil {
		return err
	}
	if err := CheckOwnerDelete(current); err != nil {
		return err
	}
	_, err = s.Append(entityType, entityID, models.StatusDeletedByUser, nil, nil)
	return err
}

// CheckOwnerDelete validates the owner soft-delete rule against a current
// status. Split out as a pure function so the rule is testable without a
// ledger.
func CheckOwnerDelete(current string) error {
	if current == models.StatusDeletedByUser {
		return ErrAlreadyDeleted
	}
	if _, ok := ownerDeletableStatuses[current]; !ok {
		return ErrInvalidStateForDelete
	}
	return nil
}

// controllers/submission.go
package controllers

import (
	"net/http"
	"strconv"

	"creator-directory-api/config"
	"creator-directory-api/models"
	"creator-directory-api/services"

	"github.com/gin-gonic/gin"
)

// ===================== SUBMISSION MANAGEMENT =====================

// CreateSubmission accepts a new creator submission from the resolved
// identity (authenticated or anonymous).
func CreateSubmission(c *gin.Context) {
	var payload services.SubmissionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	svc := services.NewSubmissionService(config.DB)
	submission, err := svc.Create(payload, currentIdentity(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":        true,
		"submission":     submission,
		"current_status": models.StatusSubmitted,
	})
}

// GetSubmissions returns the caller's own submissions.
func GetSubmissions(c *gin.Context) {
	svc := services.NewSubmissionService(config.DB)
	submissions, err := svc.ListOwned(currentIdentity(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(submissions))
	for i := range submissions {
		current, err := svc.Statuses().CurrentStatus(models.EntityCreatorSubmission, submissions[i].SubmissionID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		items = append(items, gin.H{
			"submission":     submissions[i],
			"current_status": current,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": items,
		"total":       len(items),
	})
}

// GetSubmission returns one owned submission with its current status.
func GetSubmission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	svc := services.NewSubmissionService(config.DB)
	submission, err := svc.GetOwned(id, currentIdentity(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	current, err := svc.Statuses().CurrentStatus(models.EntityCreatorSubmission, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"submission":     submission,
		"current_status": current,
	})
}

// UpdateSubmission applies a partial update to an owned submission. Edits
// made while the submission is under review are included when it is
// eventually promoted.
func UpdateSubmission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	var update services.SubmissionUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	svc := services.NewSubmissionService(config.DB)
	submission, err := svc.UpdateOwned(id, update, currentIdentity(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"submission": submission,
	})
}

// DeleteSubmission is the owner-initiated soft delete: it appends one
// deleted_by_user ledger entry and leaves the row for staff.
func DeleteSubmission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	svc := services.NewSubmissionService(config.DB)
	if err := svc.SoftDeleteOwned(id, currentIdentity(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Submission deleted",
	})
}

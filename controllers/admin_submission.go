// controllers/admin_submission.go
package controllers

import (
	"net/http"
	"strconv"

	"creator-directory-api/config"
	"creator-directory-api/models"
	"creator-directory-api/services"

	"github.com/gin-gonic/gin"
)

// Admin submission endpoints skip the ownership guard by design: review is
// staff work and is not owner-scoped. Routes are gated by RequireRole.

type adminStatusRequest struct {
	Status  string  `json:"status" binding:"required"`
	Comment *string `json:"comment"`
}

// AdminGetSubmissions lists every submission regardless of owner.
func AdminGetSubmissions(c *gin.Context) {
	svc := services.NewSubmissionService(config.DB)
	submissions, err := svc.ListAllForAdmin()
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

// AdminGetSubmission returns one submission with its full status history,
// newest first, so reviewers see the audit trail.
func AdminGetSubmission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	svc := services.NewSubmissionService(config.DB)
	submission, err := svc.GetForAdmin(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	history, err := svc.Statuses().History(models.EntityCreatorSubmission, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"submission":     submission,
		"current_status": services.CurrentStatusOf(history),
		"status_history": history,
	})
}

// AdminUpdateSubmission applies a partial update without ownership checks.
func AdminUpdateSubmission(c *gin.Context) {
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
	submission, err := svc.UpdateForAdmin(id, update)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"submission": submission,
	})
}

// AdminSetSubmissionStatus records a staff review transition. Staff may
// move a submission to any review status in any order; every transition is
// appended to the ledger with the reviewer identity. An accept transition
// triggers promotion into the catalog.
func AdminSetSubmissionStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	var req adminStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !services.ValidReviewStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown review status"})
		return
	}

	svc := services.NewSubmissionService(config.DB)
	submission, err := svc.GetForAdmin(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	reviewerID := currentUserID(c)

	var creator *models.Creator
	if req.Status == models.StatusAccepted {
		// Promote first: if the catalog entry cannot be created the accept
		// is not recorded, leaving no half-promoted state.
		creator, err = services.NewPromotionService(config.DB).PromoteOnAccept(id, reviewerID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
	}

	entry, err := svc.Statuses().SetStatusAdmin(models.EntityCreatorSubmission, id, req.Status, reviewerID, req.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	go services.NewNotificationService(config.DB).NotifyDecision(submission, req.Status, req.Comment)

	response := gin.H{
		"success":      true,
		"status_entry": entry,
	}
	if creator != nil {
		response["creator"] = creator
	}
	c.JSON(http.StatusOK, response)
}

// AdminDeleteSubmission physically removes a submission, its proofs and
// their ledgers. This is the only destructive operation in the pipeline.
func AdminDeleteSubmission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	svc := services.NewSubmissionService(config.DB)
	if err := svc.DeleteForAdmin(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Submission permanently deleted",
	})
}

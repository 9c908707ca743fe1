// controllers/admin_proof.go
package controllers

import (
	"net/http"
	"strconv"

	"creator-directory-api/config"
	"creator-directory-api/models"
	"creator-directory-api/services"

	"github.com/gin-gonic/gin"
)

// AdminGetProofs lists every proof regardless of owner.
func AdminGetProofs(c *gin.Context) {
	svc := services.NewProofService(config.DB)
	proofs, err := svc.ListAllForAdmin()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(proofs))
	for i := range proofs {
		current, err := svc.Statuses().CurrentStatus(models.EntityProofSubmission, proofs[i].ProofID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		items = append(items, gin.H{
			"proof":          proofs[i],
			"current_status": current,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"proofs":  items,
		"total":   len(items),
	})
}

// AdminGetProof returns one proof with its full status history.
func AdminGetProof(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proof ID"})
		return
	}

	svc := services.NewProofService(config.DB)
	proof, err := svc.GetForAdmin(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	history, err := svc.Statuses().History(models.EntityProofSubmission, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"proof":          proof,
		"current_status": services.CurrentStatusOf(history),
		"status_history": history,
	})
}

// AdminUpdateProof applies a partial update without ownership checks.
func AdminUpdateProof(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proof ID"})
		return
	}

	var update services.ProofUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	svc := services.NewProofService(config.DB)
	proof, err := svc.UpdateForAdmin(id, update)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"proof":   proof,
	})
}

// AdminSetProofStatus records a staff review transition on a proof. When a
// proof attached to a published creator is accepted it is copied into the
// catalog, with the same dedup rule as submission promotion.
func AdminSetProofStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proof ID"})
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

	svc := services.NewProofService(config.DB)
	if _, err := svc.GetForAdmin(id); err != nil {
		respondServiceError(c, err)
		return
	}

	reviewerID := currentUserID(c)

	if req.Status == models.StatusAccepted {
		if err := services.NewPromotionService(config.DB).PromoteProofOnAccept(id, reviewerID); err != nil {
			respondServiceError(c, err)
			return
		}
	}

	entry, err := svc.Statuses().SetStatusAdmin(models.EntityProofSubmission, id, req.Status, reviewerID, req.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"status_entry": entry,
	})
}

// AdminDeleteProof physically removes a proof and its ledger.
func AdminDeleteProof(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proof ID"})
		return
	}

	svc := services.NewProofService(config.DB)
	if err := svc.DeleteForAdmin(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Proof permanently deleted",
	})
}

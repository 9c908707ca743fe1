// controllers/proof.go
package controllers

import (
	"net/http"
	"strconv"

	"creator-directory-api/config"
	"creator-directory-api/models"
	"creator-directory-api/services"

	"github.com/gin-gonic/gin"
)

// ===================== PROOF MANAGEMENT =====================

// CreateProof attaches new evidence to an owned submission or to a
// published creator.
func CreateProof(c *gin.Context) {
	var payload services.ProofPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	svc := services.NewProofService(config.DB)
	proof, err := svc.Create(payload, currentIdentity(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":        true,
		"proof":          proof,
		"current_status": models.StatusSubmitted,
	})
}

// CreateSubmissionProof is CreateProof with the parent submission taken
// from the URL.
func CreateSubmissionProof(c *gin.Context) {
	submissionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	var payload services.ProofPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	payload.CreatorSubmissionID = &submissionID
	payload.CreatorID = nil

	svc := services.NewProofService(config.DB)
	proof, err := svc.Create(payload, currentIdentity(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":        true,
		"proof":          proof,
		"current_status": models.StatusSubmitted,
	})
}

// GetProofs returns the caller's own proofs.
func GetProofs(c *gin.Context) {
	svc := services.NewProofService(config.DB)
	proofs, err := svc.ListOwned(currentIdentity(c))
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

// GetProof returns one owned proof with its current status.
func GetProof(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proof ID"})
		return
	}

	svc := services.NewProofService(config.DB)
	proof, err := svc.GetOwned(id, currentIdentity(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	current, err := svc.Statuses().CurrentStatus(models.EntityProofSubmission, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"proof":          proof,
		"current_status": current,
	})
}

// UpdateProof applies a partial update to an owned proof.
func UpdateProof(c *gin.Context) {
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
	proof, err := svc.UpdateOwned(id, update, currentIdentity(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"proof":   proof,
	})
}

// DeleteProof is the owner-initiated soft delete for evidence.
func DeleteProof(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proof ID"})
		return
	}

	svc := services.NewProofService(config.DB)
	if err := svc.SoftDeleteOwned(id, currentIdentity(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Proof deleted",
	})
}

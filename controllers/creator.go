// controllers/creator.go
package controllers

import (
	"net/http"
	"strconv"

	"creator-directory-api/config"
	"creator-directory-api/models"
	"creator-directory-api/services"

	"github.com/gin-gonic/gin"
)

// ===================== PUBLIC CATALOG =====================

// GetCreators lists the active catalog.
func GetCreators(c *gin.Context) {
	svc := services.NewCreatorService(config.DB)
	creators, err := svc.ListActive()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"creators": creators,
		"total":    len(creators),
	})
}

// GetCreator returns one active creator with its published proofs.
func GetCreator(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid creator ID"})
		return
	}

	svc := services.NewCreatorService(config.DB)
	creator, err := svc.GetActive(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"creator": creator,
	})
}

// ===================== ADMIN CATALOG =====================

// AdminGetCreators lists every creator with its catalog status.
func AdminGetCreators(c *gin.Context) {
	svc := services.NewCreatorService(config.DB)
	creators, err := svc.ListAllForAdmin()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	statuses := services.NewStatusService(config.DB)
	items := make([]gin.H, 0, len(creators))
	for i := range creators {
		current, err := statuses.CurrentStatus(models.EntityCreator, creators[i].CreatorID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		items = append(items, gin.H{
			"creator":        creators[i],
			"catalog_status": current,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"creators": items,
		"total":    len(items),
	})
}

// AdminSetCreatorStatus flips a creator's catalog lifecycle status
// (active/inactive/pending). This ledger is separate from review statuses.
func AdminSetCreatorStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid creator ID"})
		return
	}

	var req adminStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !services.ValidCatalogStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown catalog status"})
		return
	}

	svc := services.NewCreatorService(config.DB)
	entry, err := svc.SetCatalogStatusAdmin(id, req.Status, currentUserID(c), req.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"status_entry": entry,
	})
}

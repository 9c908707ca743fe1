package controllers

import (
	"errors"
	"net/http"

	"creator-directory-api/services"

	"github.com/gin-gonic/gin"
)

// currentIdentity returns the identity resolved by the middleware, or the
// zero identity when the request carried none.
func currentIdentity(c *gin.Context) services.Identity {
	value, ok := c.Get("identity")
	if !ok {
		return services.Identity{}
	}
	identity, _ := value.(services.Identity)
	return identity
}

// currentUserID returns the authenticated user id on staff routes. Only
// valid behind AuthMiddleware.
func currentUserID(c *gin.Context) int {
	value, _ := c.Get("userID")
	id, _ := value.(int)
	return id
}

// respondServiceError maps the service error taxonomy onto HTTP. Owners get
// a uniform denial for ownership failures but precise reasons for illegal
// deletes; admin routes get NotFound distinctly since existence is not a
// secret there.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrIdentityRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identity required"})
	case errors.Is(err, services.ErrInvalidIdentityToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submitter token"})
	case errors.Is(err, services.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrAlreadyDeleted):
		c.JSON(http.StatusConflict, gin.H{"error": "Already deleted"})
	case errors.Is(err, services.ErrInvalidStateForDelete):
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot be deleted in its current status"})
	case errors.Is(err, services.ErrAlreadyPromoted):
		c.JSON(http.StatusConflict, gin.H{"error": "Submission already promoted"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

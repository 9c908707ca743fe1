package controllers

import (
	"net/http"

	"creator-directory-api/services"

	"github.com/gin-gonic/gin"
)

// IssueSubmitterToken hands an anonymous visitor a fresh submitter token.
// The token is the visitor's only handle on their submissions; losing it
// means losing access (there is no anonymous-to-account merge).
func IssueSubmitterToken(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"submitter_token": services.GenerateSubmitterID(),
	})
}

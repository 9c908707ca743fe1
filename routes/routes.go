package routes

import (
	"creator-directory-api/controllers"
	"creator-directory-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Creator Directory API is running",
				})
			})

			// Anonymous submitter token issuance
			public.POST("/submitter-token", controllers.IssueSubmitterToken)

			// Published catalog
			public.GET("/creators", controllers.GetCreators)
			public.GET("/creators/:id", controllers.GetCreator)
		}

		// Visitor routes: authenticated users and anonymous submitters.
		// ResolveIdentity applies the authenticated-wins precedence.
		visitor := v1.Group("")
		visitor.Use(middleware.ResolveIdentity())
		{
			submissions := visitor.Group("/submissions")
			{
				submissions.POST("", controllers.CreateSubmission)
				submissions.GET("", controllers.GetSubmissions)
				submissions.GET("/:id", controllers.GetSubmission)
				submissions.PUT("/:id", controllers.UpdateSubmission)
				submissions.DELETE("/:id", controllers.DeleteSubmission)
				submissions.POST("/:id/proofs", controllers.CreateSubmissionProof)
			}

			proofs := visitor.Group("/proofs")
			{
				proofs.POST("", controllers.CreateProof)
				proofs.GET("", controllers.GetProofs)
				proofs.GET("/:id", controllers.GetProof)
				proofs.PUT("/:id", controllers.UpdateProof)
				proofs.DELETE("/:id", controllers.DeleteProof)
			}
		}

		// Staff routes: JWT plus admin role, no ownership scoping.
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(middleware.RoleAdmin))
		{
			admin.GET("/submissions", controllers.AdminGetSubmissions)
			admin.GET("/submissions/:id", controllers.AdminGetSubmission)
			admin.PUT("/submissions/:id", controllers.AdminUpdateSubmission)
			admin.DELETE("/submissions/:id", controllers.AdminDeleteSubmission)
			admin.POST("/submissions/:id/status", controllers.AdminSetSubmissionStatus)

			admin.GET("/proofs", controllers.AdminGetProofs)
			admin.GET("/proofs/:id", controllers.AdminGetProof)
			admin.PUT("/proofs/:id", controllers.AdminUpdateProof)
			admin.DELETE("/proofs/:id", controllers.AdminDeleteProof)
			admin.POST("/proofs/:id/status", controllers.AdminSetProofStatus)

			admin.GET("/creators", controllers.AdminGetCreators)
			admin.POST("/creators/:id/status", controllers.AdminSetCreatorStatus)
		}
	}

	// 404 catch-all
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Route not found"})
	})
}

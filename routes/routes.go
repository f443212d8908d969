package routes

import (
	"journal-portal-api/controllers"
	"journal-portal-api/middleware"
	"journal-portal-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// Public routes
		public := api.Group("")
		{
			public.GET("/", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"message": "La Revista Nacional de las Ciencias para Estudiantes API",
				})
			})

			public.POST("/token", controllers.Token)
			public.POST("/register", controllers.Register)

			public.POST("/submit-paper", controllers.SubmitPaper)
			public.POST("/apply-admin", controllers.ApplyReviewer)

			public.GET("/papers", controllers.ListPapers)
			public.GET("/categories", controllers.GetCategories)
		}

		// Protected routes (require authentication)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/current_user", controllers.CurrentUser)

			protected.POST("/review/:id",
				middleware.RequireCapability(models.Role.CanReviewPapers),
				controllers.ReviewPaper)

			protected.GET("/admin/applications",
				middleware.RequireCapability(models.Role.CanViewApplications),
				controllers.GetApplications)
		}
	}
}

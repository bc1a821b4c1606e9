package routes

import (
	"technomech-api/controllers"
	"technomech-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Contact form
			public.POST("/contact", controllers.SubmitContact)

			// AI chat widget
			public.POST("/chat", controllers.Chat)

			// Catalog / company info
			public.GET("/catalog/products", controllers.GetProducts)
			public.GET("/catalog/services", controllers.GetServices)
			public.GET("/company", controllers.GetCompanyInfo)

			// Admin session
			public.POST("/admin/login", controllers.AdminLogin)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Techno Mech API is running",
				})
			})
		}

		// Admin routes (require a valid session cookie)
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			admin.POST("/logout", controllers.AdminLogout)

			admin.GET("/submissions", controllers.GetSubmissions)
			admin.PUT("/submissions", controllers.UpdateSubmission)
			admin.DELETE("/submissions", controllers.DeleteSubmissions)
		}
	}
}

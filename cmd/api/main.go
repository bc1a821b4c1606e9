package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"technomech-api/config"
	"technomech-api/controllers"
	"technomech-api/middleware"
	"technomech-api/monitor"
	"technomech-api/routes"
	"technomech-api/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	// Set Gin mode
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Pick the store backend: MySQL when configured, the JSON file
	// otherwise. The file store races last-writer-wins across processes,
	// which is acceptable for this low-traffic deployment.
	var store services.SubmissionStore
	var backend string
	if config.DatabaseConfigured() {
		config.InitDB()
		gormStore, err := services.NewGormStore(config.DB)
		if err != nil {
			log.Fatal("Failed to prepare submissions table:", err)
		}
		store = gormStore
		backend = "mysql"
	} else {
		fileStore, err := services.NewFileStore(config.SubmissionsFile())
		if err != nil {
			log.Fatal("Failed to prepare submissions file:", err)
		}
		store = fileStore
		backend = "file"
		log.Printf("No database configured, using file store at %s", config.SubmissionsFile())
	}

	notifier := services.NewNotifier(config.SendMail, config.MailConfigured, config.AdminEmail)
	captcha := services.NewCaptchaVerifier(config.RecaptchaSecret)
	submissionService := services.NewSubmissionService(store, notifier, captcha,
		config.ContactPhonePrefix, config.ContactEmailDomain)
	chatService := services.NewChatService(config.GeminiAPIKey)
	controllers.Setup(submissionService, chatService)

	// Create Gin router
	router := gin.New()

	// Add logging middleware
	router.Use(gin.Logger())

	// Add recovery middleware
	router.Use(gin.Recovery())

	// Add security headers middleware
	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	})

	// Add CORS middleware
	router.Use(middleware.CORSMiddleware())

	// Operational status page
	monitor.RegisterMonitorRoute(router, store, backend)

	// Setup routes
	routes.SetupRoutes(router)

	// Start server
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

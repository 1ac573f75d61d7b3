package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"client_intake_backend/internal/database"
	"client_intake_backend/internal/geocode"
	"client_intake_backend/internal/middleware"
	"client_intake_backend/internal/repositories"
	"client_intake_backend/internal/router"
	"client_intake_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize Logger
	utils.InitLogger()

	// Select the persistence backend for the whole process lifetime.
	var userRepo repositories.UserRepository
	storeBackend := utils.Getenv("STORE_BACKEND", "file")
	switch storeBackend {
	case "file":
		dataDir := utils.Getenv("DATA_DIR", "app")
		repo, err := repositories.NewFileRepository(dataDir)
		if err != nil {
			utils.LogError(err, "Failed to initialize file store")
			log.Fatalf("Failed to initialize file store: %v", err)
		}
		userRepo = repo
		utils.LogInfo("File store initialized", map[string]interface{}{"data_dir": dataDir})
	case "postgres":
		dbHost := utils.Getenv("DB_HOST", "localhost")
		dbPort := utils.Getenv("DB_PORT", "5432")
		dbUser := utils.Getenv("DB_USER", "client_intake_user")
		dbPassword := utils.Getenv("DB_PASSWORD", "client_intake_password")
		dbName := utils.Getenv("DB_NAME", "client_intake_db")
		dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")
		dbSchemaPath := utils.Getenv("DB_SCHEMA_PATH", "")

		database.InitDB(dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode, dbSchemaPath)
		userRepo = repositories.NewPostgresUserRepository(database.GetDB())
		utils.LogInfo("Database store initialized", map[string]interface{}{"configured_from_env": true})
	default:
		log.Fatalf("Unknown STORE_BACKEND %q (want file or postgres)", storeBackend)
	}

	csrfSecret := utils.Getenv("CSRF_SECRET", "change-me-client-intake-csrf-secret")
	csrf := middleware.NewCSRF(csrfSecret, time.Hour)

	geoClient := geocode.NewClient(utils.Getenv("GEOCODE_BASE_URL", ""))

	engine := gin.Default()

	// Request logging via zerolog
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:8080"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	// Form page and assets
	engine.LoadHTMLGlob(utils.Getenv("TEMPLATES_GLOB", "web/templates/*.html"))
	engine.Static("/static", utils.Getenv("STATIC_DIR", "web/static"))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	router.Setup(engine, userRepo, csrf, geoClient)

	// Server port configuration
	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port, "store_backend": storeBackend})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}

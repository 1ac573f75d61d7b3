package router

import (
	"client_intake_backend/internal/geocode"
	"client_intake_backend/internal/handlers"
	"client_intake_backend/internal/middleware"
	"client_intake_backend/internal/repositories"
	"client_intake_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application. The repository is
// the backend chosen at process start; csrf signs the form tokens.
func Setup(engine *gin.Engine, userRepo repositories.UserRepository, csrf *middleware.CSRF, geoClient *geocode.Client) {
	// Initialize Services
	userService := services.NewUserService(userRepo)

	// Initialize Handlers
	userHandler := handlers.NewUserHandler(userService, csrf)
	geocodeHandler := handlers.NewGeocodeHandler(geoClient)

	SetupFormRoutes(engine, userHandler, csrf)
	SetupUserRoutes(engine, userHandler)

	apiV1 := engine.Group("/api/v1")
	SetupGeocodeRoutes(apiV1, geocodeHandler)
}

package router

import (
	"client_intake_backend/internal/handlers"
	"client_intake_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupFormRoutes sets up the intake form routes.
func SetupFormRoutes(engine *gin.Engine, userHandler *handlers.UserHandler, csrf *middleware.CSRF) {
	engine.GET("/", userHandler.ShowForm)
	engine.POST("/", middleware.RequireCSRF(csrf), userHandler.SubmitForm)
}

// SetupUserRoutes sets up the stored-record listing route.
func SetupUserRoutes(engine *gin.Engine, userHandler *handlers.UserHandler) {
	engine.GET("/users", userHandler.GetUsers)
}

// SetupGeocodeRoutes sets up the address suggestion proxy.
func SetupGeocodeRoutes(apiGroup *gin.RouterGroup, geocodeHandler *handlers.GeocodeHandler) {
	apiGroup.GET("/address-suggestions", geocodeHandler.GetAddressSuggestions)
}

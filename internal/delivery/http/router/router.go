// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hauspet/internal/delivery/http/middleware"
	"hauspet/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	PetHandler       *handler.PetHandler
	AIHandler        *handler.AIHandler
	TelemetryHandler *handler.TelemetryHandler
	AlertHandler     *handler.AlertHandler
	DeviceHandler    *handler.DeviceHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	petHandler       *handler.PetHandler
	aiHandler        *handler.AIHandler
	telemetryHandler *handler.TelemetryHandler
	alertHandler     *handler.AlertHandler
	deviceHandler    *handler.DeviceHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		petHandler:       params.PetHandler,
		aiHandler:        params.AIHandler,
		telemetryHandler: params.TelemetryHandler,
		alertHandler:     params.AlertHandler,
		deviceHandler:    params.DeviceHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate

	e.GET("/api/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	userGroup := apiV1.Group("/user", authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
	}

	petsGroup := apiV1.Group("/pets", authenticate)
	{
		petsGroup.POST("", r.petHandler.AddPet)
		petsGroup.GET("", r.petHandler.ListPets)
		petsGroup.GET("/:id", r.petHandler.GetPet)
		petsGroup.PUT("/:id", r.petHandler.UpdatePet)
		petsGroup.DELETE("/:id", r.petHandler.DeletePet)
		petsGroup.GET("/:id/qrcode", r.petHandler.GetPetTag)

		petsGroup.POST("/:id/health", r.telemetryHandler.RecordReading)
		petsGroup.GET("/:id/health", r.telemetryHandler.ListReadings)
		petsGroup.GET("/:id/location/current", r.telemetryHandler.CurrentLocation)
	}

	aiGroup := apiV1.Group("/ai", authenticate)
	{
		aiGroup.POST("/chat", r.aiHandler.Chat)
		aiGroup.POST("/voice-chat", r.aiHandler.VoiceChat)
	}

	devicesGroup := apiV1.Group("/devices", authenticate)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.DELETE("/:deviceId", r.deviceHandler.UnregisterDevice)
	}

	apiV1.GET("/notifications", r.alertHandler.ListAlerts, authenticate)

	// Unversioned paths still called by released mobile builds.
	e.GET("/notifications", r.alertHandler.ListAlerts, authenticate)
	e.GET("/pets/:id/location/current", r.telemetryHandler.CurrentLocation, authenticate)
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"talenthub/internal/delivery/http/middleware"
	"talenthub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Profile routes that require authentication
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.POST("/refresh", r.profileHandler.RefreshProfile)

		sectionGroup := profileGroup.Group("/sections/:section")
		{
			sectionGroup.POST("/edit", r.profileHandler.BeginEdit)
			sectionGroup.PUT("/draft", r.profileHandler.UpdateDraft)
			sectionGroup.POST("/save", r.profileHandler.SaveSection)
			sectionGroup.POST("/cancel", r.profileHandler.CancelEdit)
		}
	}
}
